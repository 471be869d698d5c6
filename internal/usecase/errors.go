package usecase

import (
	"context"
	"errors"
	"strings"

	"jobready-backend/internal/domain"
	"jobready-backend/pkg/apperror"
	"jobready-backend/pkg/logger"
	"jobready-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// validateInput runs struct validation and reports every failed field.
func validateInput(v *validator.Validate, input interface{}) error {
	if err := v.Struct(input); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}
	return nil
}

// resolveUserID prefers the authenticated identity, then the id supplied in
// the request body, then the configured placeholder.
func resolveUserID(ctx context.Context, ref domain.UserRef, fallback string) string {
	if id, ok := ctx.Value(domain.KeyUserID).(string); ok && id != "" {
		return id
	}
	if id := strings.TrimSpace(ref.String()); id != "" {
		return id
	}
	return fallback
}

// mapError translates domain errors into AppErrors. entity names the
// resource in not-found messages.
func mapError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.As(err); ok {
		return err
	}

	var genErr *domain.GenerationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound(entity + " not found")
	case errors.Is(err, domain.ErrInvalidQuestionIndex):
		return apperror.BadRequest("Invalid question index")
	case errors.Is(err, domain.ErrSessionCompleted):
		return apperror.Conflict("Interview session already completed")
	case errors.As(err, &genErr):
		logger.Log.Errorw("Generation failed", "op", genErr.Op, "error", genErr.Err)
		return apperror.Upstream("Failed to "+genErr.Op, genErr.Err)
	}

	logger.Log.Errorw("Unexpected error", "entity", entity, "error", err)
	return apperror.Internal(err)
}
