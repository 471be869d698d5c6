package domain

import "context"

type InterviewQuestion struct {
	Question       string   `json:"question"`
	ExpectedPoints []string `json:"expectedPoints"`
}

type AnswerFeedback struct {
	Score       int      `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// CompletionGateway produces generated content. Implementations either call
// a hosted language model or return deterministic placeholder content.
// Failures are reported as *GenerationError.
type CompletionGateway interface {
	// Name identifies the implementation ("mock", "openai", "gemini").
	Name() string
	GenerateCV(ctx context.Context, cv CVContent) (string, error)
	GenerateInterviewQuestions(ctx context.Context, jobTitle string, count int) ([]InterviewQuestion, error)
	EvaluateAnswer(ctx context.Context, question, answer, jobTitle string) (*AnswerFeedback, error)
	// GenerateCareerAdvice replies to message given the transcript so far.
	// Only the last ChatContextWindow history entries are used.
	GenerateCareerAdvice(ctx context.Context, message string, history []Message) (string, error)
}
