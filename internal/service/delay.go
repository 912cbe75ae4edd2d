package service

import (
	"context"
	"time"
)

// waitDelay blocks for d or until ctx is done, whichever comes first.
// A zero delay still reports an already-cancelled ctx.
func waitDelay(ctx context.Context, d time.Duration) error {
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
