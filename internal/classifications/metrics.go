package classifications

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/JaimeStill/lexi/pkg/metrics"
)

// Metrics holds the classification collectors. A nil *Metrics records nothing.
type Metrics struct {
	classified *prometheus.CounterVec
	synthesis  *prometheus.HistogramVec
}

// NewMetrics registers the classification collectors through factory.
func NewMetrics(factory promauto.Factory) *Metrics {
	return &Metrics{
		classified: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metrics.Namespace,
				Name:      "classifications_total",
				Help:      "Pasted texts classified, by category",
			},
			[]string{"category"},
		),
		synthesis: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metrics.Namespace,
				Name:      "synthesis_duration_seconds",
				Help:      "Time spent synthesizing a document from pasted text",
				Buckets:   []float64{0.01, 0.1, 0.5, 1, 1.5, 2, 5},
			},
			[]string{"category"},
		),
	}
}

func (m *Metrics) observeClassification(c Category) {
	if m == nil {
		return
	}
	m.classified.WithLabelValues(string(c)).Inc()
}

func (m *Metrics) observeSynthesis(c Category, d time.Duration) {
	if m == nil {
		return
	}
	m.synthesis.WithLabelValues(string(c)).Observe(d.Seconds())
}
