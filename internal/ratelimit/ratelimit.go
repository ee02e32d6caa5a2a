package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out consecutive sends to avoid bursting the messaging
// endpoint's rate limits.
type Pacer interface {
	Wait(ctx context.Context) error
}

// IntervalPacer allows one event per fixed interval.
type IntervalPacer struct {
	limiter *rate.Limiter
}

// NewIntervalPacer creates a pacer allowing one event every interval.
// A zero interval disables pacing.
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &IntervalPacer{limiter: rate.NewLimiter(limit, 1)}
}

var _ Pacer = (*IntervalPacer)(nil)

func (p *IntervalPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
