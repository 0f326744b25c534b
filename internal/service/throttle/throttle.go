package throttle

import (
	"context"
	"sync"
	"time"
)

// Gate enforces a minimum spacing between outbound provider calls. One Gate
// is constructed per process and handed to every fetch call site, so the
// spacing is shared across all symbols rather than tracked per symbol.
type Gate struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// New creates a gate with the given minimum spacing between calls.
// The first call passes immediately.
func New(interval time.Duration) *Gate {
	return &Gate{interval: interval}
}

// Interval returns the configured minimum spacing.
func (g *Gate) Interval() time.Duration {
	return g.interval
}

// Wait suspends the caller until its provider call is eligible and returns
// the time actually spent waiting. The next-eligible timestamp is reserved
// under the lock before sleeping, so concurrent callers serialize and each
// pair of consecutive calls stays at least the interval apart. A cancelled
// context aborts the sleep but the reservation is not retracted.
func (g *Gate) Wait(ctx context.Context) (time.Duration, error) {
	g.mu.Lock()
	now := time.Now()
	wait := g.next.Sub(now)
	if wait < 0 {
		wait = 0
	}
	g.next = now.Add(wait + g.interval)
	g.mu.Unlock()

	if wait == 0 {
		return 0, nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
		return wait, nil
	}
}
