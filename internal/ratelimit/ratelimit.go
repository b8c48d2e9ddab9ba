// Package ratelimit throttles inbound requests per client so a single
// caller cannot starve the partition scans the data endpoint issues.
package ratelimit

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter rate-limits requests per client IP. A client's limiter is kept
// for the life of the process; idle clients are not evicted.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// New builds a Limiter allowing rps requests per second per client, with
// burst allowed above that rate.
func New(rps float64, burst int) *Limiter {
	return &Limiter{
		visitors: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *Limiter) forClient(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.visitors[key]
	if !ok {
		lim = rate.NewLimiter(l.rps, l.burst)
		l.visitors[key] = lim
	}
	return lim
}

// Middleware wraps next, rejecting requests over the limit with 429.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		if !l.forClient(key).Allow() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
