// Package clock provides time helpers for the mining loop.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or returns early when ctx is canceled. A zero
// or negative duration returns immediately without touching a timer, which is
// the common case for the default inter-cycle sleep of 0s.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
