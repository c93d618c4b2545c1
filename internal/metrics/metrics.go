package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jasaku_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jasaku_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// Moderación
	MessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jasaku_messages_sent_total",
			Help: "Total chat messages accepted and stored",
		},
	)

	MessagesBlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jasaku_messages_blocked_total",
			Help: "Total chat messages rejected for contact info",
		},
	)

	// Wallet
	RevealsGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jasaku_reveals_granted_total",
			Help: "Total contact reveals granted",
		},
	)

	RevealsDenied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jasaku_reveals_denied_total",
			Help: "Total contact reveals denied for insufficient funds",
		},
	)

	TopUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jasaku_topups_total",
			Help: "Total wallet top-ups",
		},
	)
)
