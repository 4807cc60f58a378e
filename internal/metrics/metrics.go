package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "writeai_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// CompletionDuration tracks upstream latency per task and model.
	CompletionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "writeai_completion_duration_seconds",
		Help:    "Time spent waiting on the completion backend.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"task", "model"})

	// CompletionFailures counts classified failures.
	CompletionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "writeai_completion_failures_total",
		Help: "Completion failures by task and error kind.",
	}, []string{"task", "kind"})

	// InputChars tracks the distribution of input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "writeai_input_chars",
		Help:    "Number of characters in completion input text.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	// BackendAvailable tracks whether the configured backend is ready.
	BackendAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "writeai_backend_available",
		Help: "Whether the completion backend is available (1) or not (0).",
	}, []string{"backend"})
)
