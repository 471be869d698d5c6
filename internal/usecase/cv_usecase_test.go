package usecase_test

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobready-backend/internal/domain"
	"jobready-backend/internal/gateway"
	"jobready-backend/internal/repository/memory"
	"jobready-backend/internal/usecase"
	"jobready-backend/pkg/validation"
)

func validCVInput() *domain.CVInput {
	return &domain.CVInput{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+94 77 123 4567",
		Skills:     domain.ParseSkills("Go, SQL, Docker"),
		Experience: "Five years building backend services",
		Education:  "BSc Computer Science",
	}
}

func TestGenerateCVWithMockGateway(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewCVUsecase(store.CVs(), gateway.NewMockGateway(rand.NewSource(1)), validation.New(), "dev-user-1")

	cv, err := uc.GenerateCV(context.Background(), validCVInput())
	require.NoError(t, err)
	require.NotNil(t, cv.GeneratedHTML)
	assert.Contains(t, *cv.GeneratedHTML, "Jane Doe")
	assert.Contains(t, *cv.GeneratedHTML, "jane@example.com")
	assert.Equal(t, domain.DefaultCVTitle, cv.Title)
	assert.Equal(t, "dev-user-1", cv.UserID)
	assert.Nil(t, cv.Summary)

	list, err := uc.ListUserCVs(context.Background(), "dev-user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, cv.ID, list[0].ID)
}

func TestGenerateCVValidation(t *testing.T) {
	store := memory.NewStore()
	gw := new(MockGateway)
	uc := usecase.NewCVUsecase(store.CVs(), gw, validation.New(), "dev-user-1")

	t.Run("too few skills", func(t *testing.T) {
		input := validCVInput()
		input.Skills = domain.ParseSkills("Go, SQL")

		_, err := uc.GenerateCV(context.Background(), input)
		appErr := requireAppError(t, err, http.StatusBadRequest)
		fields := appErr.Details.(map[string]string)
		assert.Equal(t, "Please add at least 3 skills separated by commas", fields["skills"])
	})

	t.Run("several fields at once", func(t *testing.T) {
		input := validCVInput()
		input.FullName = "J4ne"
		input.Email = "not-an-email"
		input.Summary = "too short"

		_, err := uc.GenerateCV(context.Background(), input)
		appErr := requireAppError(t, err, http.StatusBadRequest)
		fields := appErr.Details.(map[string]string)
		assert.Contains(t, fields, "fullName")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "summary")
	})

	list, err := store.CVs().ListByUser(context.Background(), "dev-user-1")
	require.NoError(t, err)
	assert.Empty(t, list)
	gw.AssertNotCalled(t, "GenerateCV", mock.Anything, mock.Anything)
}

func TestGenerateCVFailureKeepsRecord(t *testing.T) {
	store := memory.NewStore()
	gw := new(MockGateway)
	uc := usecase.NewCVUsecase(store.CVs(), gw, validation.New(), "dev-user-1")

	gw.On("GenerateCV", mock.Anything, mock.Anything).
		Return("", domain.NewGenerationError("generate CV", errors.New("upstream timeout"))).Once()

	_, err := uc.GenerateCV(context.Background(), validCVInput())
	appErr := requireAppError(t, err, http.StatusInternalServerError)
	assert.Equal(t, "Failed to generate CV", appErr.Message)
	assert.Equal(t, "upstream timeout", appErr.Details)

	list, _ := store.CVs().ListByUser(context.Background(), "dev-user-1")
	require.Len(t, list, 1)
	assert.Nil(t, list[0].GeneratedHTML)

	gw.On("GenerateCV", mock.Anything, mock.Anything).Return("<div>Jane Doe</div>", nil).Once()
	cv, err := uc.RegenerateCV(context.Background(), list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "<div>Jane Doe</div>", *cv.GeneratedHTML)
	gw.AssertExpectations(t)
}

func TestGenerateCVUserResolution(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewCVUsecase(store.CVs(), gateway.NewMockGateway(rand.NewSource(1)), validation.New(), "dev-user-1")

	input := validCVInput()
	input.UserID = "body-user"
	cv, err := uc.GenerateCV(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "body-user", cv.UserID)

	ctx := context.WithValue(context.Background(), domain.KeyUserID, "token-user")
	input = validCVInput()
	input.UserID = "body-user"
	cv, err = uc.GenerateCV(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "token-user", cv.UserID)
}

func TestGetCVNotFound(t *testing.T) {
	uc := usecase.NewCVUsecase(memory.NewStore().CVs(), new(MockGateway), validation.New(), "dev-user-1")

	_, err := uc.GetCV(context.Background(), 404)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "CV not found", appErr.Message)

	_, err = uc.RegenerateCV(context.Background(), 404)
	requireAppError(t, err, http.StatusNotFound)
}
