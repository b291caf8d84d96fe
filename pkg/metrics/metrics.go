// Package metrics owns the Prometheus registry shared by all subsystems and
// exposes it over HTTP.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name registered through a System.
const Namespace = "lexi"

// System wraps a dedicated Prometheus registry.
type System struct {
	registry *prometheus.Registry
	factory  promauto.Factory

	// HTTPRequests counts requests by module, method, and status.
	HTTPRequests *prometheus.CounterVec
	// HTTPDuration observes request latency by module and method.
	HTTPDuration *prometheus.HistogramVec
}

// New creates a System with Go runtime and process collectors registered.
func New() *System {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &System{
		registry: reg,
		factory:  factory,
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests by module, method, and status",
			},
			[]string{"module", "method", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"module", "method"},
		),
	}
}

// Factory returns a promauto factory bound to the registry so domain packages
// can declare their own collectors.
func (s *System) Factory() promauto.Factory {
	return s.factory
}

// Registry returns the underlying registry, mainly for tests.
func (s *System) Registry() *prometheus.Registry {
	return s.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (s *System) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})
}
