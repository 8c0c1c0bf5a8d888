// Package eventually asserts that a condition holds within a time window.
//
// It is meant for tests of concurrent or asynchronous code, where the value
// under test settles some time after the action that produces it:
//
//	count := eventually.Require(ctx, t, queue.Len, eventually.Equal(4))
package eventually

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
)

const (
	InitialInterval = time.Millisecond
	MaxInterval     = time.Second
)

// Poll evaluates op until its result matches expected or the timeout
// passes. Between evaluations it sleeps for InitialInterval, doubling up to
// MaxInterval. Once the deadline has passed op is evaluated one final time
// and that result decides the outcome.
//
// Poll always returns the last value op produced. The error is an
// *AssertionError when the final evaluation did not match, or wraps
// ctx.Err() when ctx was done during a sleep, in which case no final
// evaluation is made.
func Poll[T any](ctx context.Context, op func() T, expected Matcher[T], opts ...Option) (T, error) {
	o := newOptions(opts)
	deadline := o.clock.Now().Add(o.timeout)
	intervals := newBackOff(o.clock)

	var actual T
	for o.clock.Now().Before(deadline) {
		actual = op()
		if expected.Matches(actual) {
			return actual, nil
		}

		if err := o.clock.Sleep(ctx, intervals.NextBackOff()); err != nil {
			return actual, errors.Wrap(err, "polling interrupted")
		}
	}

	actual = op()
	if expected.Matches(actual) {
		return actual, nil
	}

	return actual, &AssertionError{
		Message:  o.message,
		Expected: expected.String(),
		Actual:   actual,
	}
}

// The deadline belongs to Poll, so the backoff never stops on its own.
func newBackOff(clock Clock) *backoff.ExponentialBackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     InitialInterval,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         MaxInterval,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               clock,
	}
	b.Reset()
	return b
}
