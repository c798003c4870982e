package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homehandshake",
			Subsystem: "publish_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "homehandshake",
			Subsystem: "publish_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	// Upstream call counters, labelled by aggregation endpoint
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homehandshake",
			Subsystem: "publish_api",
			Name:      "upstream_requests_total",
			Help:      "Total calls to the aggregation API and webhook",
		},
		[]string{"endpoint", "outcome"},
	)

	// Per-platform publish outcomes
	PublishResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homehandshake",
			Subsystem: "publish_api",
			Name:      "publish_results_total",
			Help:      "Per-platform publish outcomes",
		},
		[]string{"platform", "status"},
	)
)

// RecordRequest increments the HTTP request counter.
func RecordRequest(method, status string) {
	RequestsTotal.WithLabelValues(method, status).Inc()
}

// RecordUpstream increments the upstream call counter.
func RecordUpstream(endpoint, outcome string) {
	UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// RecordPublish increments the per-platform publish counter.
func RecordPublish(platform, status string) {
	PublishResultsTotal.WithLabelValues(platform, status).Inc()
}
