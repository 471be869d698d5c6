package usecase

import (
	"context"
	"time"

	"jobready-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type chatUsecase struct {
	repo          domain.ChatRepository
	gateway       domain.CompletionGateway
	validate      *validator.Validate
	defaultUserID string
}

func NewChatUsecase(repo domain.ChatRepository, gateway domain.CompletionGateway, validate *validator.Validate, defaultUserID string) domain.ChatUsecase {
	return &chatUsecase{
		repo:          repo,
		gateway:       gateway,
		validate:      validate,
		defaultUserID: defaultUserID,
	}
}

func (u *chatUsecase) StartChat(ctx context.Context, input *domain.StartChatInput) (*domain.ChatSession, error) {
	session := &domain.ChatSession{
		UserID:   resolveUserID(ctx, input.UserID, u.defaultUserID),
		Title:    domain.DefaultChatTitle,
		Messages: []domain.Message{},
	}
	if err := u.repo.Create(ctx, session); err != nil {
		return nil, mapError(err, "Chat session")
	}
	return session, nil
}

// SendMessage gets a reply for the new message and appends both turns in a
// single repository call. Nothing is written when generation fails.
func (u *chatUsecase) SendMessage(ctx context.Context, sessionID int64, input *domain.ChatMessageInput) (*domain.ChatReply, error) {
	input.Normalize()
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	session, err := u.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, mapError(err, "Chat session")
	}

	userMsg := domain.Message{Role: domain.RoleUser, Content: input.Message, Timestamp: time.Now().UTC()}
	reply, err := u.gateway.GenerateCareerAdvice(ctx, input.Message, session.Messages)
	if err != nil {
		return nil, mapError(err, "Chat session")
	}
	assistantMsg := domain.Message{Role: domain.RoleAssistant, Content: reply, Timestamp: time.Now().UTC()}

	updated, err := u.repo.AppendMessages(ctx, sessionID, userMsg, assistantMsg)
	if err != nil {
		return nil, mapError(err, "Chat session")
	}
	return &domain.ChatReply{Session: updated, Response: reply}, nil
}

func (u *chatUsecase) GetChat(ctx context.Context, sessionID int64) (*domain.ChatSession, error) {
	session, err := u.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, mapError(err, "Chat session")
	}
	return session, nil
}

func (u *chatUsecase) ListUserChats(ctx context.Context, userID string) ([]domain.ChatSession, error) {
	sessions, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapError(err, "Chat session")
	}
	return sessions, nil
}
