package eventually

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

// Assert polls like Poll and reports a failed assertion to t. An
// interrupted poll is returned to the caller without being reported.
func Assert[T any](ctx context.Context, t assert.TestingT, op func() T, expected Matcher[T], opts ...Option) (T, error) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	actual, err := Poll(ctx, op, expected, opts...)

	var failure *AssertionError
	if errors.As(err, &failure) {
		if failure.Message == "" {
			assert.Fail(t, failure.mismatch())
		} else {
			assert.Fail(t, failure.mismatch(), failure.Message)
		}
	}
	return actual, err
}

// Require is Assert followed by t.FailNow on any error.
func Require[T any](ctx context.Context, t require.TestingT, op func() T, expected Matcher[T], opts ...Option) T {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	actual, err := Assert(ctx, t, op, expected, opts...)
	if err == nil {
		return actual
	}
	if !IsAssertionError(err) {
		t.Errorf("eventually: %v", err)
	}
	t.FailNow()
	return actual
}
