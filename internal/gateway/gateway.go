// Package gateway implements domain.CompletionGateway. The mock gateway
// returns deterministic placeholder content; the live gateway builds prompts
// and delegates to a Completer for one hosted model provider.
package gateway

import (
	"context"
	"fmt"

	"jobready-backend/config"
	"jobready-backend/internal/domain"
	"jobready-backend/pkg/logger"
)

// ChatMessage is one turn sent to a Completer.
type ChatMessage struct {
	Role    string
	Content string
}

type CompletionRequest struct {
	System    string
	Messages  []ChatMessage
	JSON      bool // ask the provider for a JSON object
	MaxTokens int
}

// Completer sends one completion request to a model provider and returns the
// text of the first choice.
type Completer interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// New picks the gateway once for the lifetime of the process.
func New(ctx context.Context, cfg *config.Config) (domain.CompletionGateway, error) {
	if cfg.UseMockAI() {
		logger.Log.Infow("completion gateway selected", "gateway", "mock")
		return NewMockGateway(nil), nil
	}

	var completer Completer
	switch cfg.AIProvider {
	case "openai", "":
		completer = NewOpenAICompleter(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case "gemini":
		c, err := NewGeminiCompleter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		completer = c
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", cfg.AIProvider)
	}

	logger.Log.Infow("completion gateway selected", "gateway", completer.Name())
	return NewLiveGateway(completer, Options{
		Timeout:            cfg.AITimeout,
		BreakerMaxFailures: cfg.AIBreakerMaxFailure,
		BreakerOpenPeriod:  cfg.AIBreakerOpenPeriod,
	}), nil
}
