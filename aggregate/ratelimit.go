package aggregate

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/suggest"
	"golang.org/x/time/rate"
)

var _ suggest.Limiter = (*Limiter)(nil)

// Limiter enforces a minimum spacing between outbound requests using a
// token bucket with a burst of 1. A single Limiter is shared by every
// source so that spacing holds regardless of which upstream is queried.
//
// Callers are serialized: the wait and the record of the dispatch time
// happen under one lock.
type Limiter struct {
	mu   sync.Mutex
	last time.Time
}

// NewLimiter creates a Limiter with no recorded request.
func NewLimiter() *Limiter {
	return &Limiter{}
}

// Wait blocks until minDelay has elapsed since the previous request, then
// records the current time as the last dispatch.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context, minDelay time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// The bucket is rebuilt on every call and seeded with the recorded
	// dispatch, so spacing is measured from when the previous caller
	// actually proceeded rather than from when its token was scheduled.
	limiter := rate.NewLimiter(rate.Every(minDelay), 1)
	if !l.last.IsZero() {
		limiter.ReserveN(l.last, 1)
	}
	if err := limiter.Wait(ctx); err != nil {
		return err
	}

	// rate converts durations through float64 tokens; top up any
	// nanoseconds lost to rounding.
	if remaining := minDelay - time.Since(l.last); !l.last.IsZero() && remaining > 0 {
		timer := time.NewTimer(remaining)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	l.last = time.Now()
	return nil
}

// LastDispatch returns the time recorded by the most recent successful Wait,
// or the zero time if there is none.
func (l *Limiter) LastDispatch() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

// Reset forgets the last recorded request so the next Wait returns immediately.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.last = time.Time{}
}
