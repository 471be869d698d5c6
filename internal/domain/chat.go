package domain

import (
	"context"
	"strings"
	"time"
)

const (
	DefaultChatTitle = "Career Chat"
	// ChatContextWindow is how many past messages are sent to the
	// completion gateway with a new message.
	ChatContextWindow = 10
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type Message struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

type ChatSession struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy.
func (s *ChatSession) Clone() *ChatSession {
	out := *s
	out.Messages = append(make([]Message, 0, len(s.Messages)), s.Messages...)
	return &out
}

// RecentMessages returns at most the last n messages, oldest first.
func RecentMessages(history []Message, n int) []Message {
	if n <= 0 {
		return nil
	}
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

type StartChatInput struct {
	UserID UserRef `json:"userId"`
}

type ChatMessageInput struct {
	Message string `json:"message" validate:"required"`
}

func (in *ChatMessageInput) Normalize() {
	in.Message = strings.TrimSpace(in.Message)
}

// ChatReply is the transcript after a turn plus the raw assistant reply.
type ChatReply struct {
	Session  *ChatSession `json:"session"`
	Response string       `json:"response"`
}

type ChatRepository interface {
	Create(ctx context.Context, session *ChatSession) error
	GetByID(ctx context.Context, id int64) (*ChatSession, error)
	// AppendMessages appends to the stored transcript in one atomic step and
	// returns the updated session.
	AppendMessages(ctx context.Context, id int64, messages ...Message) (*ChatSession, error)
	ListByUser(ctx context.Context, userID string) ([]ChatSession, error)
}

type ChatUsecase interface {
	StartChat(ctx context.Context, input *StartChatInput) (*ChatSession, error)
	SendMessage(ctx context.Context, sessionID int64, input *ChatMessageInput) (*ChatReply, error)
	GetChat(ctx context.Context, sessionID int64) (*ChatSession, error)
	ListUserChats(ctx context.Context, userID string) ([]ChatSession, error)
}
