package auth

import (
	"context"
	"errors"
	"sync"
	"time"
)

// RateLimiter paces outgoing requests per host.
type RateLimiter interface {
	Wait(ctx context.Context, host string) error
}

// InProcessLimiter is a fixed-window limiter tracking request counts per host
// in memory. Wait blocks until the next window when the current one is full.
type InProcessLimiter struct {
	rpm    int
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	counters map[string]*counter
}

type counter struct {
	count    int
	windowAt time.Time
}

// NewInProcessLimiter allows requestsPerMinute calls per host. Zero or
// negative disables limiting.
func NewInProcessLimiter(requestsPerMinute int) *InProcessLimiter {
	return &InProcessLimiter{
		rpm:      requestsPerMinute,
		window:   time.Minute,
		now:      time.Now,
		counters: make(map[string]*counter),
	}
}

// Wait reserves a slot for host, sleeping until the next window if needed.
// It returns ErrTooManyRequests wrapped with the context error when ctx ends
// first.
func (l *InProcessLimiter) Wait(ctx context.Context, host string) error {
	if l == nil || l.rpm <= 0 {
		return nil
	}
	for {
		delay := l.reserve(host)
		if delay <= 0 {
			return nil
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return errors.Join(ErrTooManyRequests, ctx.Err())
		case <-t.C:
		}
	}
}

// reserve returns zero when a slot was taken, else the time until the
// window resets.
func (l *InProcessLimiter) reserve(host string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.counters[host]
	if !ok || now.Sub(c.windowAt) >= l.window {
		l.counters[host] = &counter{count: 1, windowAt: now}
		return 0
	}
	if c.count < l.rpm {
		c.count++
		return 0
	}
	return c.windowAt.Add(l.window).Sub(now)
}
