package sessions

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/JaimeStill/lexi/pkg/metrics"
)

// Metrics tracks live sessions. A nil *Metrics records nothing.
type Metrics struct {
	active  prometheus.Gauge
	evicted prometheus.Counter
}

// NewMetrics registers the session collectors through factory.
func NewMetrics(factory promauto.Factory) *Metrics {
	return &Metrics{
		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metrics.Namespace,
			Name:      "sessions_active",
			Help:      "Viewing sessions currently held in memory",
		}),
		evicted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "sessions_evicted_total",
			Help:      "Viewing sessions removed after their idle TTL",
		}),
	}
}

func (m *Metrics) setActive(n int) {
	if m == nil {
		return
	}
	m.active.Set(float64(n))
}

func (m *Metrics) addEvicted(n int) {
	if m == nil || n == 0 {
		return
	}
	m.evicted.Add(float64(n))
}
