package httputil

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter enforces a minimum interval between consecutive operations.
//
// It wraps [rate.Limiter] with a burst of one, so the first Wait returns
// immediately and every subsequent Wait blocks until the interval has
// elapsed since the previous one. A nil *Limiter is valid and never waits,
// which keeps call sites free of nil checks when limiting is disabled.
type Limiter struct {
	rl *rate.Limiter
}

// NewLimiter creates a limiter that allows one operation per interval.
// A non-positive interval disables limiting (Wait never blocks).
func NewLimiter(interval time.Duration) *Limiter {
	if interval <= 0 {
		return &Limiter{rl: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Limiter{rl: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the limiter permits the next operation or ctx is done.
// It returns ctx.Err() on cancellation.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil || l.rl == nil {
		return ctx.Err()
	}
	return l.rl.Wait(ctx)
}
