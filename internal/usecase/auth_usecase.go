package usecase

import (
	"context"
	"errors"
	"strings"

	"jobready-backend/internal/domain"
	"jobready-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo      domain.UserRepository
	defaultUserID string
}

func NewAuthUsecase(userRepo domain.UserRepository, defaultUserID string) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, defaultUserID: defaultUserID}
}

func (u *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) error {
	user.ID = strings.TrimSpace(user.ID)
	if user.ID == "" {
		return apperror.BadRequest("User id is required")
	}
	if err := u.userRepo.Upsert(ctx, user); err != nil {
		return mapError(err, "User")
	}
	return nil
}

// GetCurrentUser falls back to the placeholder user for anonymous requests.
func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return u.placeholder(), nil
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) && userID == u.defaultUserID {
		return u.placeholder(), nil
	}
	if err != nil {
		return nil, mapError(err, "User")
	}
	return user, nil
}

func (u *authUsecase) placeholder() *domain.User {
	return &domain.User{
		ID:        u.defaultUserID,
		Email:     "dev@example.com",
		FirstName: "Dev",
		LastName:  "User",
	}
}
