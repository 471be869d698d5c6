package postgres

import (
	"context"
	"encoding/json"

	"jobready-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const chatColumns = `id, user_id, title, messages, created_at, updated_at`

type chatRepo struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) domain.ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) Create(ctx context.Context, session *domain.ChatSession) error {
	if session.Messages == nil {
		session.Messages = []domain.Message{}
	}
	messages, err := json.Marshal(session.Messages)
	if err != nil {
		return domain.NewStorageError("encode messages", err)
	}

	query := `INSERT INTO chat_sessions (user_id, title, messages, created_at, updated_at)
              VALUES ($1, $2, $3::jsonb, NOW(), NOW())
              RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(ctx, query, session.UserID, session.Title, string(messages)).
		Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	return wrapErr("create chat", err)
}

func (r *chatRepo) GetByID(ctx context.Context, id int64) (*domain.ChatSession, error) {
	query := `SELECT ` + chatColumns + ` FROM chat_sessions WHERE id = $1`
	session, err := scanChat(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr("get chat", err)
	}
	return session, nil
}

// AppendMessages concatenates onto the stored array in a single statement so
// concurrent turns never overwrite each other.
func (r *chatRepo) AppendMessages(ctx context.Context, id int64, messages ...domain.Message) (*domain.ChatSession, error) {
	if messages == nil {
		messages = []domain.Message{}
	}
	payload, err := json.Marshal(messages)
	if err != nil {
		return nil, domain.NewStorageError("encode messages", err)
	}

	query := `UPDATE chat_sessions
              SET messages = COALESCE(messages, '[]'::jsonb) || $2::jsonb, updated_at = NOW()
              WHERE id = $1
              RETURNING ` + chatColumns
	session, err := scanChat(r.db.QueryRow(ctx, query, id, string(payload)))
	if err != nil {
		return nil, wrapErr("append chat messages", err)
	}
	return session, nil
}

func (r *chatRepo) ListByUser(ctx context.Context, userID string) ([]domain.ChatSession, error) {
	query := `SELECT ` + chatColumns + ` FROM chat_sessions WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("list chats", err)
	}
	defer rows.Close()

	sessions := []domain.ChatSession{}
	for rows.Next() {
		session, err := scanChat(rows)
		if err != nil {
			return nil, wrapErr("scan chat", err)
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list chats", err)
	}
	return sessions, nil
}

func scanChat(row pgx.Row) (*domain.ChatSession, error) {
	var s domain.ChatSession
	var raw []byte
	if err := row.Scan(&s.ID, &s.UserID, &s.Title, &raw, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Messages = []domain.Message{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.Messages); err != nil {
			return nil, err
		}
	}
	return &s, nil
}
