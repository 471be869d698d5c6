package gateway

import (
	"context"
	"errors"
	"time"

	"jobready-backend/pkg/logger"
	"jobready-backend/pkg/metrics"

	"github.com/sony/gobreaker/v2"
)

// breaker trips after maxFailures consecutive failed completions and rejects
// calls for openPeriod before letting a single trial call through.
type breaker struct {
	cb *gobreaker.CircuitBreaker[string]
}

func newBreaker(provider string, maxFailures uint32, openPeriod time.Duration) *breaker {
	if maxFailures == 0 {
		maxFailures = 5
	}
	if openPeriod <= 0 {
		openPeriod = 30 * time.Second
	}

	metrics.BreakerState.WithLabelValues(provider).Set(stateValue(gobreaker.StateClosed))
	settings := gobreaker.Settings{
		Name:        "completion-" + provider,
		MaxRequests: 1,
		Timeout:     openPeriod,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// A caller that gave up says nothing about provider health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.BreakerState.WithLabelValues(provider).Set(stateValue(to))
			logger.Log.Warnw("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}
	return &breaker{cb: gobreaker.NewCircuitBreaker[string](settings)}
}

func (b *breaker) Execute(fn func() (string, error)) (string, error) {
	return b.cb.Execute(fn)
}

func (b *breaker) State() gobreaker.State {
	return b.cb.State()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
