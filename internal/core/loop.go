package core

import (
	"context"
	"time"
)

// RunFixed calls step tickRate times per second until step returns false or
// ctx is cancelled. Late ticks are dropped, not replayed. It returns
// ctx.Err() on cancellation and nil when step asked to stop.
func RunFixed(ctx context.Context, tickRate int, step func() bool) error {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !step() {
				return nil
			}
		}
	}
}
