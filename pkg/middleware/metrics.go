package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics returns middleware that counts requests by method and status and
// observes their duration. The module label distinguishes mounted modules.
func Metrics(module string, requests *prometheus.CounterVec, duration *prometheus.HistogramVec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := record(w)
			next.ServeHTTP(rec, r)

			requests.WithLabelValues(module, r.Method, strconv.Itoa(rec.status)).Inc()
			duration.WithLabelValues(module, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
