package test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/orbs-network/assert-eventually/eventually"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type recordingT struct {
	errors []string
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

// produce increments counter once per limiter token, stopping after limit
// increments or when ctx is done.
func produce(ctx context.Context, limiter *rate.Limiter, counter *int64, limit int64) {
	for i := int64(0); i < limit; i++ {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		atomic.AddInt64(counter, 1)
	}
}

func TestEventuallyObservesRateLimitedProducer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var produced int64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		produce(ctx, rate.NewLimiter(rate.Every(5*time.Millisecond), 1), &produced, 1000)
	}()

	count := eventually.Require(ctx, t, func() int64 {
		return atomic.LoadInt64(&produced)
	}, eventually.Satisfies("at least 20 produced", func(n int64) bool {
		return n >= 20
	}), eventually.WithTimeout(10*time.Second))

	require.GreaterOrEqual(t, count, int64(20))

	cancel()
	wg.Wait()
}

func TestEventuallyReportsStalledProducer(t *testing.T) {
	var produced int64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		produce(context.Background(), rate.NewLimiter(rate.Every(time.Millisecond), 1), &produced, 3)
	}()

	recorder := &recordingT{}
	last, err := eventually.Assert(context.Background(), recorder, func() int64 {
		return atomic.LoadInt64(&produced)
	}, eventually.Equal(int64(10)),
		eventually.WithTimeout(200*time.Millisecond),
		eventually.WithMessage("producer stalled at %d", 3))
	wg.Wait()

	require.True(t, eventually.IsAssertionError(err))
	require.Equal(t, int64(3), last)
	require.Len(t, recorder.errors, 1)
	require.Contains(t, recorder.errors[0], "producer stalled at 3")
	require.Contains(t, recorder.errors[0], "but: was 3")
}
