package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/time/rate"
)

// limiterSet hands out one token bucket per client address. When the set
// reaches its capacity it is reset rather than grown.
type limiterSet struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
	max     int
}

func newLimiterSet(cfg *RateLimitConfig) *limiterSet {
	return &limiterSet{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(cfg.RequestsPerSecond),
		burst:   cfg.Burst,
		max:     cfg.MaxClients,
	}
}

func (s *limiterSet) get(client string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.buckets[client]; ok {
		return l
	}
	if s.max > 0 && len(s.buckets) >= s.max {
		clear(s.buckets)
	}

	l := rate.NewLimiter(s.limit, s.burst)
	s.buckets[client] = l
	return l
}

// RateLimit returns middleware that rejects requests with 429 once a client
// exhausts its token bucket. Passes through when disabled.
func RateLimit(cfg *RateLimitConfig) func(http.Handler) http.Handler {
	set := newLimiterSet(cfg)
	retryAfter := strconv.Itoa(max(1, int(1/cfg.RequestsPerSecond)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			if !set.get(clientAddr(r)).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", retryAfter)
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
