package crawl

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// DefaultRequestsPerMinute is the crawler's published fetch budget against
// the knowledge base.
const DefaultRequestsPerMinute = 20

// DomainLimiter paces fetches using per-domain token buckets. Fetches are
// issued sequentially, but listing pages and share hosts live on different
// domains, so each domain keeps its own budget.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// per domain with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// NewDefaultLimiter creates a DomainLimiter honoring
// DefaultRequestsPerMinute.
func NewDefaultLimiter() *DomainLimiter {
	return NewDomainLimiter(DefaultRequestsPerMinute / 60.0)
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
