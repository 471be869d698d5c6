package memory

import (
	"context"

	"jobready-backend/internal/domain"
)

type userRepo struct{ s *Store }

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *userRepo) Upsert(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	if existing, ok := r.s.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	r.s.users[user.ID] = *cloneUser(*user)
	return nil
}

func cloneUser(u domain.User) *domain.User {
	if u.ProfileImageURL != nil {
		v := *u.ProfileImageURL
		u.ProfileImageURL = &v
	}
	return &u
}

type cvRepo struct{ s *Store }

func (r *cvRepo) Create(ctx context.Context, cv *domain.CV) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.cvSeq++
	now := r.s.now()
	cv.ID = r.s.cvSeq
	cv.CreatedAt = now
	cv.UpdatedAt = now
	r.s.cvs[cv.ID] = cloneCV(cv)
	return nil
}

func (r *cvRepo) GetByID(ctx context.Context, id int64) (*domain.CV, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cv, ok := r.s.cvs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneCV(cv), nil
}

func (r *cvRepo) UpdateHTML(ctx context.Context, id int64, html string) (*domain.CV, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cv, ok := r.s.cvs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cv.GeneratedHTML = &html
	cv.UpdatedAt = r.s.now()
	return cloneCV(cv), nil
}

func (r *cvRepo) ListByUser(ctx context.Context, userID string) ([]domain.CV, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.CV{}
	for _, cv := range r.s.cvs {
		if cv.UserID == userID {
			out = append(out, *cloneCV(cv))
		}
	}
	sortCVs(out)
	return out, nil
}

func cloneCV(cv *domain.CV) *domain.CV {
	out := *cv
	out.Skills = append([]string(nil), cv.Skills...)
	out.Phone = clone(cv.Phone)
	out.Location = clone(cv.Location)
	out.Summary = clone(cv.Summary)
	out.GeneratedHTML = clone(cv.GeneratedHTML)
	return &out
}

func clone(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

type interviewRepo struct{ s *Store }

func (r *interviewRepo) Create(ctx context.Context, session *domain.InterviewSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.ivSeq++
	now := r.s.now()
	session.ID = r.s.ivSeq
	session.Version = 1
	session.CreatedAt = now
	session.UpdatedAt = now
	r.s.ivs[session.ID] = session.Clone()
	return nil
}

func (r *interviewRepo) GetByID(ctx context.Context, id int64) (*domain.InterviewSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	session, ok := r.s.ivs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session.Clone(), nil
}

func (r *interviewRepo) Update(ctx context.Context, session *domain.InterviewSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.ivs[session.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != session.Version {
		return domain.ErrVersionConflict
	}

	next := session.Clone()
	next.UserID = stored.UserID
	next.JobTitle = stored.JobTitle
	next.CreatedAt = stored.CreatedAt
	next.Version = stored.Version + 1
	next.UpdatedAt = r.s.now()
	r.s.ivs[session.ID] = next

	session.Version = next.Version
	session.UpdatedAt = next.UpdatedAt
	return nil
}

func (r *interviewRepo) ListByUser(ctx context.Context, userID string) ([]domain.InterviewSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.InterviewSession{}
	for _, session := range r.s.ivs {
		if session.UserID == userID {
			out = append(out, *session.Clone())
		}
	}
	sortInterviews(out)
	return out, nil
}

type chatRepo struct{ s *Store }

func (r *chatRepo) Create(ctx context.Context, session *domain.ChatSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.chatSq++
	now := r.s.now()
	session.ID = r.s.chatSq
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Messages == nil {
		session.Messages = []domain.Message{}
	}
	r.s.chats[session.ID] = session.Clone()
	return nil
}

func (r *chatRepo) GetByID(ctx context.Context, id int64) (*domain.ChatSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	session, ok := r.s.chats[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session.Clone(), nil
}

func (r *chatRepo) AppendMessages(ctx context.Context, id int64, messages ...domain.Message) (*domain.ChatSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.chats[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	session.Messages = append(session.Messages, messages...)
	session.UpdatedAt = r.s.now()
	return session.Clone(), nil
}

func (r *chatRepo) ListByUser(ctx context.Context, userID string) ([]domain.ChatSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.ChatSession{}
	for _, session := range r.s.chats {
		if session.UserID == userID {
			out = append(out, *session.Clone())
		}
	}
	sortChats(out)
	return out, nil
}
