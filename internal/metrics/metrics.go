package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jardam_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jardam_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	ErrorsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jardam_errors_total",
			Help: "Total number of logged errors.",
		},
		[]string{"type"},
	)
	SessionCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jardam_session_cache_lookups_total",
			Help: "Session cache lookups by result.",
		},
		[]string{"result"},
	)
)
