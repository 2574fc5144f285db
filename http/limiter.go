package http

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/sift"
	"golang.org/x/time/rate"
)

// HostLimiter spaces requests to the same host. Buckets are keyed on the
// lower-cased hostname without port, so "Example.com:443" and "example.com"
// share one. Each host gets a burst of 1.
type HostLimiter struct {
	limit rate.Limit

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second per
// host.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limit:   rate.Limit(rps),
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to u's host may proceed. Returns an EFETCH
// error when ctx ends first, or when its deadline is too close to wait out.
func (l *HostLimiter) Wait(ctx context.Context, u *url.URL) error {
	if err := l.bucket(u).Wait(ctx); err != nil {
		return sift.Errorf(sift.EFETCH, "rate limited for %s: %v", u.Hostname(), err)
	}
	return nil
}

// Hosts returns the number of hosts seen so far.
func (l *HostLimiter) Hosts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *HostLimiter) bucket(u *url.URL) *rate.Limiter {
	key := strings.ToLower(u.Hostname())

	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(l.limit, 1)
		l.buckets[key] = b
	}
	return b
}
