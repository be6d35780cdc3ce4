// Package metrics exposes Prometheus instrumentation for the HTTP API
// and the suggestion pipeline.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by method, route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dishcover_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dishcover_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// RatingMutations counts rating submissions by outcome.
	RatingMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dishcover_rating_mutations_total",
			Help: "Total rating submissions by outcome (created, updated, removed, rejected)",
		},
		[]string{"outcome"},
	)

	// SuggestionsServed counts suggestion responses by source.
	SuggestionsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dishcover_suggestions_served_total",
			Help: "Total suggestion responses by source (personalized, fallback)",
		},
		[]string{"source"},
	)
)

// RecordHTTPRequest records one completed request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
