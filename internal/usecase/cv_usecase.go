package usecase

import (
	"context"

	"jobready-backend/internal/domain"
	"jobready-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type cvUsecase struct {
	repo          domain.CVRepository
	gateway       domain.CompletionGateway
	validate      *validator.Validate
	defaultUserID string
}

func NewCVUsecase(repo domain.CVRepository, gateway domain.CompletionGateway, validate *validator.Validate, defaultUserID string) domain.CVUsecase {
	return &cvUsecase{
		repo:          repo,
		gateway:       gateway,
		validate:      validate,
		defaultUserID: defaultUserID,
	}
}

// GenerateCV stores the form first and then attaches the generated document.
// When generation fails the stored CV keeps a null generatedHtml and can be
// regenerated later.
func (u *cvUsecase) GenerateCV(ctx context.Context, input *domain.CVInput) (*domain.CV, error) {
	input.Normalize()
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	title := input.Title
	if title == "" {
		title = domain.DefaultCVTitle
	}
	cv := &domain.CV{
		UserID:     resolveUserID(ctx, input.UserID, u.defaultUserID),
		Title:      title,
		FullName:   input.FullName,
		Email:      input.Email,
		Phone:      domain.StringPtr(input.Phone),
		Location:   domain.StringPtr(input.Location),
		Summary:    domain.StringPtr(input.Summary),
		Skills:     []string(input.Skills),
		Experience: input.Experience,
		Education:  input.Education,
	}
	if err := u.repo.Create(ctx, cv); err != nil {
		return nil, mapError(err, "CV")
	}

	return u.attachHTML(ctx, cv)
}

func (u *cvUsecase) RegenerateCV(ctx context.Context, id int64) (*domain.CV, error) {
	cv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, "CV")
	}
	return u.attachHTML(ctx, cv)
}

func (u *cvUsecase) attachHTML(ctx context.Context, cv *domain.CV) (*domain.CV, error) {
	html, err := u.gateway.GenerateCV(ctx, cv.Content())
	if err != nil {
		logger.Log.Warnw("CV stored without generated document", "cv_id", cv.ID, "error", err)
		return nil, mapError(err, "CV")
	}

	updated, err := u.repo.UpdateHTML(ctx, cv.ID, html)
	if err != nil {
		return nil, mapError(err, "CV")
	}
	logger.Log.Infow("CV generated", "cv_id", updated.ID, "user_id", updated.UserID, "gateway", u.gateway.Name())
	return updated, nil
}

func (u *cvUsecase) GetCV(ctx context.Context, id int64) (*domain.CV, error) {
	cv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err, "CV")
	}
	return cv, nil
}

func (u *cvUsecase) ListUserCVs(ctx context.Context, userID string) ([]domain.CV, error) {
	cvs, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapError(err, "CV")
	}
	return cvs, nil
}
