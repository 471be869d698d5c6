package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobready-backend/internal/domain"
	"jobready-backend/internal/repository/memory"
	"jobready-backend/internal/usecase"
)

func TestGetCurrentUser(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewAuthUsecase(store.Users(), "dev-user-1")
	ctx := context.Background()

	user, err := uc.GetCurrentUser(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "dev-user-1", user.ID)
	assert.Equal(t, "dev@example.com", user.Email)

	require.NoError(t, uc.EnsureUserExists(ctx, &domain.User{ID: "auth0|42", Email: "a@b.io", FirstName: "Ada"}))
	user, err = uc.GetCurrentUser(ctx, "auth0|42")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)

	_, err = uc.GetCurrentUser(ctx, "ghost")
	requireAppError(t, err, http.StatusNotFound)

	err = uc.EnsureUserExists(ctx, &domain.User{ID: " "})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestHealthCheck(t *testing.T) {
	ok := usecase.NewHealthUsecase("mock", "memory", nil).Check(context.Background())
	assert.Equal(t, map[string]string{"status": "ok", "gateway": "mock", "store": "memory"}, ok)

	down := usecase.NewHealthUsecase("openai", "postgres", func(ctx context.Context) error {
		return errors.New("connection refused")
	}).Check(context.Background())
	assert.Equal(t, "degraded", down["status"])
}
