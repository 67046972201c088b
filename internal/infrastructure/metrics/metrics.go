// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_feed_fetches_total",
			Help: "Directory feed fetches by result",
		},
		[]string{"result"},
	)

	FeedDoctors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "directory_feed_doctors",
			Help: "Number of doctors in the loaded directory",
		},
	)

	FeedFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "directory_feed_fetch_duration_seconds",
			Help: "Duration of the directory feed fetch in seconds",
		},
	)

	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_session_transitions_total",
			Help: "Filter transitions applied to directory sessions",
		},
		[]string{"action"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "directory_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"route"},
	)
)
