package eventually

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Clock is the time source and sleep primitive used between polls.
// Sleep must return early with the context's error once ctx is done.
type Clock interface {
	backoff.Clock
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

// SystemClock is the wall clock. It is the default for every poll.
var SystemClock Clock = systemClock{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
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
