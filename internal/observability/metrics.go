package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planets_http_requests_total",
			Help: "Total number of inbound HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planets_http_request_duration_seconds",
			Help:    "Duration of inbound HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// SWAPIRequestsTotal is labelled with the remote status code, or "error" on transport failure
	SWAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planets_swapi_requests_total",
			Help: "Total number of requests made to the remote planet API",
		},
		[]string{"status"},
	)

	SWAPIRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planets_swapi_request_duration_seconds",
			Help:    "Duration of requests made to the remote planet API in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
