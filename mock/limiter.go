package mock

import (
	"context"
	"time"

	"github.com/fwojciec/suggest"
)

var _ suggest.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of suggest.Limiter.
type Limiter struct {
	WaitFn  func(ctx context.Context, minDelay time.Duration) error
	ResetFn func()
}

func (l *Limiter) Wait(ctx context.Context, minDelay time.Duration) error {
	return l.WaitFn(ctx, minDelay)
}

func (l *Limiter) Reset() {
	l.ResetFn()
}
