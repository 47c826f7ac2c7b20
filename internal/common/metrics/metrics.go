// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_processed_total",
			Help: "Total number of chat messages processed, by pillar",
		},
		[]string{"pillar"},
	)

	IntentsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_intents_detected_total",
			Help: "Total number of intent classifications, by intent",
		},
		[]string{"intent"},
	)

	SchemeMatchesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scheme_matches_returned",
			Help:    "Number of schemes returned per matching call",
			Buckets: prometheus.LinearBuckets(0, 1, 8),
		},
	)

	LLMCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "llm_call_duration_seconds",
			Help: "Duration of text generation calls in seconds",
		},
		[]string{"operation"},
	)

	LLMCallFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_call_failures_total",
			Help: "Total number of failed text generation calls",
		},
		[]string{"operation"},
	)

	SessionOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_store_operations_total",
			Help: "Total number of session store operations, by op and status",
		},
		[]string{"operation", "status"},
	)
)
