package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"jobready-backend/internal/domain"
	"jobready-backend/pkg/logger"
	"jobready-backend/pkg/metrics"

	"github.com/tidwall/gjson"
)

var (
	errEmptyCompletion = errors.New("empty completion")
	errMalformedJSON   = errors.New("completion is not valid JSON")
)

type Options struct {
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenPeriod  time.Duration
}

// LiveGateway calls a hosted model through a Completer. Every call is bounded
// by Options.Timeout and guarded by a circuit breaker.
type LiveGateway struct {
	completer Completer
	breaker   *breaker
	timeout   time.Duration
}

func NewLiveGateway(completer Completer, opts Options) *LiveGateway {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &LiveGateway{
		completer: completer,
		breaker:   newBreaker(completer.Name(), opts.BreakerMaxFailures, opts.BreakerOpenPeriod),
		timeout:   opts.Timeout,
	}
}

func (g *LiveGateway) Name() string { return g.completer.Name() }

func (g *LiveGateway) complete(ctx context.Context, op string, req CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	provider := g.completer.Name()
	start := time.Now()
	text, err := g.breaker.Execute(func() (string, error) {
		return g.completer.Complete(ctx, req)
	})
	metrics.CompletionDuration.WithLabelValues(provider, op).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.CompletionCalls.WithLabelValues(provider, op, "error").Inc()
		logger.Log.Errorw("Completion failed", "provider", provider, "operation", op, "error", err)
		return "", err
	}
	metrics.CompletionCalls.WithLabelValues(provider, op, "ok").Inc()
	return text, nil
}

func (g *LiveGateway) GenerateCV(ctx context.Context, cv domain.CVContent) (string, error) {
	data, err := json.Marshal(cv)
	if err != nil {
		return "", domain.NewGenerationError("generate CV", err)
	}

	text, err := g.complete(ctx, "generate_cv", CompletionRequest{
		Messages:  []ChatMessage{{Role: string(domain.RoleUser), Content: cvPrompt(string(data))}},
		MaxTokens: cvMaxTokens,
	})
	if err != nil {
		return "", domain.NewGenerationError("generate CV", err)
	}

	html := stripFences(text)
	if html == "" {
		return "", domain.NewGenerationError("generate CV", errEmptyCompletion)
	}
	return html, nil
}

func (g *LiveGateway) GenerateInterviewQuestions(ctx context.Context, jobTitle string, count int) ([]domain.InterviewQuestion, error) {
	if count <= 0 {
		count = domain.DefaultQuestionCount
	}

	text, err := g.complete(ctx, "generate_questions", CompletionRequest{
		System:   questionsSystemPrompt,
		Messages: []ChatMessage{{Role: string(domain.RoleUser), Content: questionsPrompt(jobTitle, count)}},
		JSON:     true,
	})
	if err != nil {
		return nil, domain.NewGenerationError("generate interview questions", err)
	}

	doc, err := parseJSONObject(text)
	if err != nil {
		return nil, domain.NewGenerationError("generate interview questions", err)
	}

	questions := []domain.InterviewQuestion{}
	for _, item := range doc.Get("questions").Array() {
		q := item.Get("question").String()
		if q == "" {
			continue
		}
		questions = append(questions, domain.InterviewQuestion{
			Question:       q,
			ExpectedPoints: stringArray(item.Get("expectedPoints")),
		})
	}
	return questions, nil
}

func (g *LiveGateway) EvaluateAnswer(ctx context.Context, question, answer, jobTitle string) (*domain.AnswerFeedback, error) {
	text, err := g.complete(ctx, "evaluate_answer", CompletionRequest{
		System:   evaluateSystemPrompt,
		Messages: []ChatMessage{{Role: string(domain.RoleUser), Content: evaluatePrompt(question, answer, jobTitle)}},
		JSON:     true,
	})
	if err != nil {
		return nil, domain.NewGenerationError("evaluate answer", err)
	}

	doc, err := parseJSONObject(text)
	if err != nil {
		return nil, domain.NewGenerationError("evaluate answer", err)
	}

	feedback := doc.Get("feedback").String()
	if feedback == "" {
		feedback = "No feedback available"
	}
	return &domain.AnswerFeedback{
		Score:       clampScore(doc.Get("score")),
		Feedback:    feedback,
		Suggestions: stringArray(doc.Get("suggestions")),
	}, nil
}

func (g *LiveGateway) GenerateCareerAdvice(ctx context.Context, message string, history []domain.Message) (string, error) {
	recent := domain.RecentMessages(history, domain.ChatContextWindow)
	msgs := make([]ChatMessage, 0, len(recent)+1)
	for _, m := range recent {
		msgs = append(msgs, ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	msgs = append(msgs, ChatMessage{Role: string(domain.RoleUser), Content: message})

	text, err := g.complete(ctx, "career_advice", CompletionRequest{
		System:    adviceSystemPrompt,
		Messages:  msgs,
		MaxTokens: adviceMaxTokens,
	})
	if err != nil {
		return "", domain.NewGenerationError("generate career advice", err)
	}
	if text == "" {
		return AdviceFallback, nil
	}
	return text, nil
}

// parseJSONObject accepts an empty completion as an empty object.
func parseJSONObject(text string) (gjson.Result, error) {
	text = stripFences(text)
	if text == "" {
		text = "{}"
	}
	if !gjson.Valid(text) {
		return gjson.Result{}, errMalformedJSON
	}
	doc := gjson.Parse(text)
	if !doc.IsObject() {
		return gjson.Result{}, errMalformedJSON
	}
	return doc, nil
}

// clampScore defaults a missing or zero score to 5 and bounds it to [1,10].
func clampScore(v gjson.Result) int {
	score := int(math.Round(v.Float()))
	if score == 0 {
		score = 5
	}
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

func stringArray(v gjson.Result) []string {
	out := []string{}
	for _, item := range v.Array() {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}
