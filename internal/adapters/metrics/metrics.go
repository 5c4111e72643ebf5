package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the Prometheus metrics exposed on /metrics.
type Registry struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SignInsTotal      prometheus.Counter
	ClubsCreatedTotal prometheus.Counter
}

func NewRegistry() *Registry {
	return &Registry{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wupitch_http_requests_total",
				Help: "Total HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wupitch_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"route", "method"},
		),
		SignInsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "wupitch_sign_ins_total",
				Help: "Total successful sign-ins (password and social)",
			},
		),
		ClubsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "wupitch_clubs_created_total",
				Help: "Total clubs created",
			},
		),
	}
}
