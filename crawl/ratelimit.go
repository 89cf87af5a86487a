package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/scraped"
	"golang.org/x/time/rate"
)

var _ scraped.HostLimiter = (*HostLimiter)(nil)

// HostLimiter paces requests with one token bucket per host, so requests to
// different hosts do not wait on each other.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second to
// each host, without bursting. A non-positive rps disables limiting.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to host is allowed.
// Returns an error if the context is canceled before the wait completes.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	if l.rps <= 0 {
		return ctx.Err()
	}

	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
