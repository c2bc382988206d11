package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	generateTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tribald",
			Subsystem: "catalog",
			Name:      "generate_requests_total",
			Help:      "Total generation requests by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	visionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tribald",
			Subsystem: "catalog",
			Name:      "vision_request_duration_seconds",
			Help:      "Duration of vision model calls in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	translationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tribald",
			Subsystem: "catalog",
			Name:      "translations_total",
			Help:      "Translations served, by language and source (cache or fresh)",
		},
		[]string{"language", "source"},
	)
)

func init() {
	prometheus.MustRegister(generateTotal, visionDuration, translationsTotal)
}
