// Package observability provides Prometheus metrics for the qyl client and
// the HTTP instrumentation that records them.
package observability

import "github.com/prometheus/client_golang/prometheus"

// APIBuckets covers REST latencies from 5ms to 30s.
var APIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

var (
	// RequestsTotal counts API calls by method, route template and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qyl_client_requests_total",
			Help: "API requests issued by the qyl client",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration records time to response headers.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qyl_client_request_duration_seconds",
			Help:    "API request duration",
			Buckets: APIBuckets,
		},
		[]string{"method", "route"},
	)

	// StreamsActive tracks open event-stream bodies.
	StreamsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "qyl_client_streams_active",
			Help: "Open event streams",
		},
	)

	// DecodeFailuresTotal counts response bodies, by route, that did not
	// satisfy the model contract.
	DecodeFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qyl_client_decode_failures_total",
			Help: "Response bodies that failed to decode",
		},
		[]string{"route"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		StreamsActive,
		DecodeFailuresTotal,
	)
}
