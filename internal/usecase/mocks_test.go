package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobready-backend/internal/domain"
	"jobready-backend/pkg/apperror"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Name() string { return "test" }

func (m *MockGateway) GenerateCV(ctx context.Context, cv domain.CVContent) (string, error) {
	args := m.Called(ctx, cv)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) GenerateInterviewQuestions(ctx context.Context, jobTitle string, count int) ([]domain.InterviewQuestion, error) {
	args := m.Called(ctx, jobTitle, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewQuestion), args.Error(1)
}

func (m *MockGateway) EvaluateAnswer(ctx context.Context, question, answer, jobTitle string) (*domain.AnswerFeedback, error) {
	args := m.Called(ctx, question, answer, jobTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnswerFeedback), args.Error(1)
}

func (m *MockGateway) GenerateCareerAdvice(ctx context.Context, message string, history []domain.Message) (string, error) {
	args := m.Called(ctx, message, history)
	return args.String(0), args.Error(1)
}

func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected *apperror.AppError, got %T", err)
	require.Equal(t, code, appErr.Code)
	return appErr
}
