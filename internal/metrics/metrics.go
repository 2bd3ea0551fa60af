package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salon_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// CacheReads counts query-coordinator cache outcomes per entity type.
	// result is one of: fresh, miss, coalesced.
	CacheReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_cache_reads_total",
			Help: "Entity cache read outcomes by type",
		},
		[]string{"type", "result"},
	)

	CacheInvalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_cache_invalidations_total",
			Help: "Entity cache invalidations by type",
		},
		[]string{"type"},
	)

	RemoteCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_remote_calls_total",
			Help: "Calls issued to the domain backend by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_session_transitions_total",
			Help: "Session gate state transitions by target state",
		},
		[]string{"to"},
	)
)
