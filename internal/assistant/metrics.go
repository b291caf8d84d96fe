package assistant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/JaimeStill/lexi/pkg/metrics"
)

// Metrics counts answers by the rule that produced them. A nil *Metrics
// records nothing.
type Metrics struct {
	answers *prometheus.CounterVec
}

// NewMetrics registers the assistant collectors through factory.
func NewMetrics(factory promauto.Factory) *Metrics {
	return &Metrics{
		answers: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metrics.Namespace,
				Subsystem: "assistant",
				Name:      "answers_total",
				Help:      "Answers produced, by rule and confidence",
			},
			[]string{"rule", "confidence"},
		),
	}
}

func (m *Metrics) observe(rule string, a ChatAnswer) {
	if m == nil {
		return
	}
	m.answers.WithLabelValues(rule, string(a.Confidence)).Inc()
}
