// Package metrics provides Prometheus metrics for the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	// LLMRequestsTotal counts completion requests by task and outcome.
	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notebridge",
			Name:      "llm_requests_total",
			Help:      "Total number of LLM completion requests",
		},
		[]string{"task", "status"},
	)

	// LLMRequestDuration measures completion latency.
	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "notebridge",
			Name:      "llm_request_duration_seconds",
			Help:      "Duration of LLM completion requests in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"task"},
	)

	// NotebookRequestsTotal counts notebook API calls by operation and outcome.
	NotebookRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notebridge",
			Name:      "notebook_requests_total",
			Help:      "Total number of notebook API requests",
		},
		[]string{"operation", "status"},
	)

	// OAuthCallbacksTotal counts OAuth callbacks by outcome.
	OAuthCallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notebridge",
			Name:      "oauth_callbacks_total",
			Help:      "Total number of OAuth callbacks",
		},
		[]string{"outcome"},
	)
)

// RecordLLMRequest records one completion request.
func RecordLLMRequest(task, status string, duration time.Duration) {
	LLMRequestsTotal.WithLabelValues(task, status).Inc()
	LLMRequestDuration.WithLabelValues(task).Observe(duration.Seconds())
}

// RecordNotebookRequest records one notebook API call.
func RecordNotebookRequest(operation, status string) {
	NotebookRequestsTotal.WithLabelValues(operation, status).Inc()
}

// RecordOAuthCallback records the outcome of an OAuth callback.
func RecordOAuthCallback(outcome string) {
	OAuthCallbacksTotal.WithLabelValues(outcome).Inc()
}
