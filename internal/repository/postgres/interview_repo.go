package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"jobready-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const interviewColumns = `id, user_id, job_title, questions, overall_score, completed, version, created_at, updated_at`

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

func (r *interviewRepo) Create(ctx context.Context, session *domain.InterviewSession) error {
	questions, err := encodeQuestions(session.Questions)
	if err != nil {
		return domain.NewStorageError("encode questions", err)
	}

	query := `INSERT INTO interview_sessions (user_id, job_title, questions, overall_score, completed, version, created_at, updated_at)
              VALUES ($1, $2, $3::jsonb, $4, $5, 1, NOW(), NOW())
              RETURNING id, version, created_at, updated_at`
	err = r.db.QueryRow(ctx, query,
		session.UserID, session.JobTitle, questions, session.OverallScore, session.Completed,
	).Scan(&session.ID, &session.Version, &session.CreatedAt, &session.UpdatedAt)
	return wrapErr("create interview", err)
}

func (r *interviewRepo) GetByID(ctx context.Context, id int64) (*domain.InterviewSession, error) {
	query := `SELECT ` + interviewColumns + ` FROM interview_sessions WHERE id = $1`
	session, err := scanInterview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr("get interview", err)
	}
	return session, nil
}

func (r *interviewRepo) Update(ctx context.Context, session *domain.InterviewSession) error {
	questions, err := encodeQuestions(session.Questions)
	if err != nil {
		return domain.NewStorageError("encode questions", err)
	}

	query := `UPDATE interview_sessions
              SET questions = $3::jsonb, overall_score = $4, completed = $5, version = version + 1, updated_at = NOW()
              WHERE id = $1 AND version = $2
              RETURNING version, updated_at`
	err = r.db.QueryRow(ctx, query,
		session.ID, session.Version, questions, session.OverallScore, session.Completed,
	).Scan(&session.Version, &session.UpdatedAt)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.NewStorageError("update interview", err)
	}

	// No row matched: either the session is gone or its version moved.
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM interview_sessions WHERE id = $1)`, session.ID).Scan(&exists); err != nil {
		return domain.NewStorageError("update interview", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrVersionConflict
}

func (r *interviewRepo) ListByUser(ctx context.Context, userID string) ([]domain.InterviewSession, error) {
	query := `SELECT ` + interviewColumns + ` FROM interview_sessions WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("list interviews", err)
	}
	defer rows.Close()

	sessions := []domain.InterviewSession{}
	for rows.Next() {
		session, err := scanInterview(rows)
		if err != nil {
			return nil, wrapErr("scan interview", err)
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list interviews", err)
	}
	return sessions, nil
}

func encodeQuestions(questions []domain.Question) (string, error) {
	if questions == nil {
		questions = []domain.Question{}
	}
	b, err := json.Marshal(questions)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func scanInterview(row pgx.Row) (*domain.InterviewSession, error) {
	var s domain.InterviewSession
	var raw []byte
	err := row.Scan(&s.ID, &s.UserID, &s.JobTitle, &raw, &s.OverallScore, &s.Completed, &s.Version, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Questions = []domain.Question{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.Questions); err != nil {
			return nil, err
		}
	}
	return &s, nil
}
