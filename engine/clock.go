package engine

import (
	"context"
	"time"
)

// Clock drives a callback on a fixed tick until its context ends
// The callback receives the measured elapsed time, so a late tick reports a larger dt
type Clock struct {
	interval time.Duration
	maxStep  time.Duration
	now      func() time.Time
}

// NewClock creates a clock ticking every interval; dt passed to the callback is capped at maxStep
func NewClock(interval, maxStep time.Duration) *Clock {
	if maxStep < interval {
		maxStep = interval
	}
	return &Clock{
		interval: interval,
		maxStep:  maxStep,
		now:      time.Now,
	}
}

// Run blocks, invoking tick until ctx is cancelled or tick returns an error
func (c *Clock) Run(ctx context.Context, tick func(dt time.Duration) error) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	last := c.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := c.now()
			dt := now.Sub(last)
			last = now
			if dt > c.maxStep {
				dt = c.maxStep
			}
			if err := tick(dt); err != nil {
				return err
			}
		}
	}
}
