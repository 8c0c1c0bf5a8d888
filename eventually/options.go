package eventually

import (
	"fmt"
	"time"
)

const DefaultTimeout = 30 * time.Second

type options struct {
	message string
	timeout time.Duration
	clock   Clock
}

type Option func(*options)

// WithMessage sets the text prefixed to the failure report.
func WithMessage(format string, args ...interface{}) Option {
	return func(o *options) {
		if len(args) == 0 {
			o.message = format
			return
		}
		o.message = fmt.Sprintf(format, args...)
	}
}

// WithTimeout bounds how long to keep polling. Zero or negative still
// evaluates the operation once.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		timeout: DefaultTimeout,
		clock:   SystemClock,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
