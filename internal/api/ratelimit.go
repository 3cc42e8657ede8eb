package api

import (
	"flight-planning-service/internal/platform/metrics"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	// Clients tracked at once; the least recently seen are evicted first.
	limiterCapacity = 10000
	limiterIdleTTL  = 10 * time.Minute
)

// IPRateLimiter hands out one token bucket per client IP.
type IPRateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	r        rate.Limit
	b        int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCapacity, nil, limiterIdleTTL),
		r:        r,
		b:        b,
	}
}

// GetLimiter returns the bucket for ip, creating it on first sight.
func (l *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	if limiter, ok := l.limiters.Get(ip); ok {
		return limiter
	}

	// Two concurrent first requests may each create a bucket; the later Add wins.
	limiter := rate.NewLimiter(l.r, l.b)
	l.limiters.Add(ip, limiter)
	return limiter
}

// rateLimitMiddleware rejects requests over the client's budget with 429.
// A nil limiter disables limiting.
func rateLimitMiddleware(limiter *IPRateLimiter, m *metrics.Collector, label func(string) string, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.GetLimiter(clientIP(r)).Allow() {
			m.RecordRateLimited(label(r.URL.Path))
			w.Header().Set("Retry-After", "1")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}` + "\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
