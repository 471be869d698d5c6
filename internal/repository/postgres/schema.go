package postgres

import (
	"context"
	"errors"

	"jobready-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied at startup. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR PRIMARY KEY,
		email VARCHAR,
		first_name VARCHAR,
		last_name VARCHAR,
		profile_image_url VARCHAR,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS cvs (
		id BIGSERIAL PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		title TEXT NOT NULL DEFAULT 'My CV',
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		location TEXT,
		summary TEXT,
		skills TEXT[] NOT NULL DEFAULT '{}',
		experience TEXT NOT NULL,
		education TEXT NOT NULL,
		generated_html TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cvs_user_id ON cvs (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS interview_sessions (
		id BIGSERIAL PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		job_title TEXT NOT NULL,
		questions JSONB NOT NULL DEFAULT '[]'::jsonb,
		overall_score INTEGER,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		version INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interview_sessions_user_id ON interview_sessions (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS chat_sessions (
		id BIGSERIAL PRIMARY KEY,
		user_id VARCHAR NOT NULL,
		title TEXT NOT NULL DEFAULT 'Career Chat',
		messages JSONB NOT NULL DEFAULT '[]'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_sessions_user_id ON chat_sessions (user_id, created_at DESC)`,
}

// EnsureSchema creates missing tables and indexes.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return domain.NewStorageError("ensure schema", err)
		}
	}
	return nil
}

// wrapErr maps a missing row to domain.ErrNotFound and everything else to a
// StorageError.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return domain.NewStorageError(op, err)
}
