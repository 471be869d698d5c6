package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobready",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jobready",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	CompletionCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobready",
		Name:      "completion_calls_total",
		Help:      "Completion gateway calls by provider, operation and outcome.",
	}, []string{"provider", "operation", "outcome"})

	CompletionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jobready",
		Name:      "completion_duration_seconds",
		Help:      "Completion gateway latency.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"provider", "operation"})

	BreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "jobready",
		Name:      "completion_breaker_state",
		Help:      "Circuit breaker state per provider (0 closed, 1 half-open, 2 open).",
	}, []string{"provider"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
