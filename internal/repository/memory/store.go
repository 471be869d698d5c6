// Package memory keeps all entities in process memory. It backs the service
// when no database is configured and is the store used by tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"jobready-backend/internal/domain"
)

// Store holds every entity behind one lock. Each entity type has its own id
// sequence.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users map[string]domain.User

	cvs    map[int64]*domain.CV
	cvSeq  int64
	ivs    map[int64]*domain.InterviewSession
	ivSeq  int64
	chats  map[int64]*domain.ChatSession
	chatSq int64
}

func NewStore() *Store {
	return &Store{
		now:   time.Now,
		users: make(map[string]domain.User),
		cvs:   make(map[int64]*domain.CV),
		ivs:   make(map[int64]*domain.InterviewSession),
		chats: make(map[int64]*domain.ChatSession),
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
	return s
}

func (s *Store) Users() domain.UserRepository           { return &userRepo{s} }
func (s *Store) CVs() domain.CVRepository               { return &cvRepo{s} }
func (s *Store) Interviews() domain.InterviewRepository { return &interviewRepo{s} }
func (s *Store) Chats() domain.ChatRepository           { return &chatRepo{s} }

// newestFirst orders by creation time descending, then id descending.
func newestFirst(aTime, bTime time.Time, aID, bID int64) bool {
	if !aTime.Equal(bTime) {
		return aTime.After(bTime)
	}
	return aID > bID
}

func sortCVs(list []domain.CV) {
	sort.Slice(list, func(i, j int) bool {
		return newestFirst(list[i].CreatedAt, list[j].CreatedAt, list[i].ID, list[j].ID)
	})
}

func sortInterviews(list []domain.InterviewSession) {
	sort.Slice(list, func(i, j int) bool {
		return newestFirst(list[i].CreatedAt, list[j].CreatedAt, list[i].ID, list[j].ID)
	})
}

func sortChats(list []domain.ChatSession) {
	sort.Slice(list, func(i, j int) bool {
		return newestFirst(list[i].CreatedAt, list[j].CreatedAt, list[i].ID, list[j].ID)
	})
}
