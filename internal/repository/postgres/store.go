package postgres

import (
	"jobready-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store groups the repositories that share one connection pool.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Users() domain.UserRepository           { return NewUserRepository(s.db) }
func (s *Store) CVs() domain.CVRepository               { return NewCVRepository(s.db) }
func (s *Store) Interviews() domain.InterviewRepository { return NewInterviewRepository(s.db) }
func (s *Store) Chats() domain.ChatRepository           { return NewChatRepository(s.db) }
