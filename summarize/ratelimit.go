package summarize

import (
	"context"
	"sync"

	"github.com/pranavarora99/pagesum"
	"golang.org/x/time/rate"
)

var _ pagesum.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter rate limits requests per domain using token buckets, so a
// batch spanning several sites only throttles requests within each site.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain with a burst of 1. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	limit := rate.Inf
	if d.rps > 0 {
		limit = rate.Limit(d.rps)
	}

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(limit, 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
