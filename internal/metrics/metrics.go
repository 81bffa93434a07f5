package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DesignRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atelier_design_requests_total",
			Help: "Total number of design generation requests by outcome",
		},
		[]string{"outcome"},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "atelier_generation_duration_seconds",
			Help: "Duration of provider image generation calls in seconds",
		},
	)
)
