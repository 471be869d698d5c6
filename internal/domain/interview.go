package domain

import (
	"context"
	"math"
	"strings"
	"time"
)

// DefaultQuestionCount is how many questions a new interview asks.
const DefaultQuestionCount = 8

type InterviewStatus string

const (
	InterviewNotStarted InterviewStatus = "not_started"
	InterviewInProgress InterviewStatus = "in_progress"
	InterviewCompleted  InterviewStatus = "completed"
)

type Question struct {
	Question string  `json:"question"`
	Answer   *string `json:"answer,omitempty"`
	Feedback *string `json:"feedback,omitempty"`
	Score    *int    `json:"score,omitempty"`
}

func (q Question) Answered() bool {
	return q.Answer != nil
}

type InterviewSession struct {
	ID           int64      `json:"id"`
	UserID       string     `json:"userId"`
	JobTitle     string     `json:"jobTitle"`
	Questions    []Question `json:"questions"`
	OverallScore *int       `json:"overallScore"`
	Completed    bool       `json:"completed"`
	// Version is bumped by every successful update and guards concurrent
	// read-modify-write cycles.
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *InterviewSession) Status() InterviewStatus {
	switch {
	case s.Completed:
		return InterviewCompleted
	case len(s.Questions) == 0:
		return InterviewNotStarted
	default:
		return InterviewInProgress
	}
}

// CheckAnswerable reports whether questionIndex may be answered now.
func (s *InterviewSession) CheckAnswerable(questionIndex int) error {
	if s.Completed {
		return ErrSessionCompleted
	}
	if questionIndex < 0 || questionIndex >= len(s.Questions) {
		return ErrInvalidQuestionIndex
	}
	return nil
}

// RecordAnswer attaches an evaluated answer to one question and moves the
// session to Completed once every question has an answer. The session is
// left untouched when an error is returned.
func (s *InterviewSession) RecordAnswer(questionIndex int, answer string, feedback *AnswerFeedback) error {
	if err := s.CheckAnswerable(questionIndex); err != nil {
		return err
	}

	score := feedback.Score
	text := feedback.Feedback
	q := &s.Questions[questionIndex]
	q.Answer = &answer
	q.Feedback = &text
	q.Score = &score

	s.refreshCompletion()
	return nil
}

func (s *InterviewSession) refreshCompletion() {
	if len(s.Questions) == 0 {
		s.Completed = false
		s.OverallScore = nil
		return
	}

	total := 0
	for _, q := range s.Questions {
		if !q.Answered() {
			s.Completed = false
			s.OverallScore = nil
			return
		}
		if q.Score != nil {
			total += *q.Score
		}
	}

	overall := int(math.Round(float64(total) / float64(len(s.Questions))))
	s.Completed = true
	s.OverallScore = &overall
}

// Clone returns a deep copy.
func (s *InterviewSession) Clone() *InterviewSession {
	out := *s
	out.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		out.Questions[i] = Question{
			Question: q.Question,
			Answer:   clonePtr(q.Answer),
			Feedback: clonePtr(q.Feedback),
			Score:    clonePtr(q.Score),
		}
	}
	out.OverallScore = clonePtr(s.OverallScore)
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

type StartInterviewInput struct {
	UserID   UserRef `json:"userId"`
	JobTitle string  `json:"jobTitle" validate:"required,max=200"`
}

func (in *StartInterviewInput) Normalize() {
	in.UserID = UserRef(strings.TrimSpace(string(in.UserID)))
	in.JobTitle = strings.TrimSpace(in.JobTitle)
}

type AnswerInput struct {
	QuestionIndex *int   `json:"questionIndex" validate:"required"`
	Answer        string `json:"answer" validate:"required"`
}

func (in *AnswerInput) Normalize() {
	in.Answer = strings.TrimSpace(in.Answer)
}

// AnswerResult is returned after an answer has been evaluated and stored.
type AnswerResult struct {
	Session  *InterviewSession `json:"session"`
	Feedback *AnswerFeedback   `json:"feedback"`
}

type InterviewRepository interface {
	Create(ctx context.Context, session *InterviewSession) error
	GetByID(ctx context.Context, id int64) (*InterviewSession, error)
	// Update stores questions, overallScore and completed only if the stored
	// version still equals session.Version, then increments it. It returns
	// ErrVersionConflict when the version moved and ErrNotFound when the row
	// is gone.
	Update(ctx context.Context, session *InterviewSession) error
	ListByUser(ctx context.Context, userID string) ([]InterviewSession, error)
}

type InterviewUsecase interface {
	StartInterview(ctx context.Context, input *StartInterviewInput) (*InterviewSession, error)
	SubmitAnswer(ctx context.Context, sessionID int64, input *AnswerInput) (*AnswerResult, error)
	GetInterview(ctx context.Context, sessionID int64) (*InterviewSession, error)
	ListUserInterviews(ctx context.Context, userID string) ([]InterviewSession, error)
}
