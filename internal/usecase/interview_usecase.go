package usecase

import (
	"context"
	"errors"

	"jobready-backend/internal/domain"
	"jobready-backend/pkg/apperror"
	"jobready-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// maxUpdateAttempts bounds how often an answer is re-applied after another
// request updated the same session first.
const maxUpdateAttempts = 3

var errNoQuestions = errors.New("no questions returned")

type interviewUsecase struct {
	repo          domain.InterviewRepository
	gateway       domain.CompletionGateway
	validate      *validator.Validate
	defaultUserID string
}

func NewInterviewUsecase(repo domain.InterviewRepository, gateway domain.CompletionGateway, validate *validator.Validate, defaultUserID string) domain.InterviewUsecase {
	return &interviewUsecase{
		repo:          repo,
		gateway:       gateway,
		validate:      validate,
		defaultUserID: defaultUserID,
	}
}

func (u *interviewUsecase) StartInterview(ctx context.Context, input *domain.StartInterviewInput) (*domain.InterviewSession, error) {
	input.Normalize()
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	generated, err := u.gateway.GenerateInterviewQuestions(ctx, input.JobTitle, domain.DefaultQuestionCount)
	if err != nil {
		return nil, mapError(err, "Interview session")
	}
	if len(generated) == 0 {
		return nil, mapError(domain.NewGenerationError("generate interview questions", errNoQuestions), "Interview session")
	}

	questions := make([]domain.Question, len(generated))
	for i, q := range generated {
		questions[i] = domain.Question{Question: q.Question}
	}

	session := &domain.InterviewSession{
		UserID:    resolveUserID(ctx, input.UserID, u.defaultUserID),
		JobTitle:  input.JobTitle,
		Questions: questions,
	}
	if err := u.repo.Create(ctx, session); err != nil {
		return nil, mapError(err, "Interview session")
	}

	logger.Log.Infow("Interview started", "session_id", session.ID, "job_title", session.JobTitle, "questions", len(questions))
	return session, nil
}

// SubmitAnswer evaluates the answer once and stores it. A concurrent update
// to the same session is resolved by re-reading and re-applying the same
// evaluation, so answers to different questions are never lost.
func (u *interviewUsecase) SubmitAnswer(ctx context.Context, sessionID int64, input *domain.AnswerInput) (*domain.AnswerResult, error) {
	input.Normalize()
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}
	idx := *input.QuestionIndex

	session, err := u.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, mapError(err, "Interview session")
	}
	if err := session.CheckAnswerable(idx); err != nil {
		return nil, mapError(err, "Interview session")
	}

	feedback, err := u.gateway.EvaluateAnswer(ctx, session.Questions[idx].Question, input.Answer, session.JobTitle)
	if err != nil {
		return nil, mapError(err, "Interview session")
	}

	for attempt := 1; ; attempt++ {
		if err := session.RecordAnswer(idx, input.Answer, feedback); err != nil {
			return nil, mapError(err, "Interview session")
		}

		err := u.repo.Update(ctx, session)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return nil, mapError(err, "Interview session")
		}
		if attempt == maxUpdateAttempts {
			return nil, apperror.Conflict("Interview session is being updated, please retry")
		}

		logger.Log.Warnw("Interview update conflict, retrying", "session_id", sessionID, "attempt", attempt)
		if session, err = u.repo.GetByID(ctx, sessionID); err != nil {
			return nil, mapError(err, "Interview session")
		}
	}

	return &domain.AnswerResult{Session: session, Feedback: feedback}, nil
}

func (u *interviewUsecase) GetInterview(ctx context.Context, sessionID int64) (*domain.InterviewSession, error) {
	session, err := u.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, mapError(err, "Interview session")
	}
	return session, nil
}

func (u *interviewUsecase) ListUserInterviews(ctx context.Context, userID string) ([]domain.InterviewSession, error) {
	sessions, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapError(err, "Interview session")
	}
	return sessions, nil
}
