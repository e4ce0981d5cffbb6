package unittest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/require"
)

// ErrNotYet signals a statistical check that has not succeeded yet and should
// be retried by Retry.
var ErrNotYet = errors.New("condition not met yet")

// Retry runs check up to attempts times, until it returns nil. Any error
// wrapping ErrNotYet triggers another attempt, other errors fail immediately.
// The test fails if no attempt succeeds.
//
// Statistical properties (a draw landing on a bound, a goodness of fit test
// passing) hold with high probability only, tests use Retry to bound the
// flakiness instead of production code retrying.
func Retry(t testing.TB, attempts uint64, check func() error) {
	t.Helper()
	require.NotZero(t, attempts)

	immediately := retry.BackoffFunc(func() (time.Duration, bool) {
		return 0, false
	})
	backoff := retry.WithMaxRetries(attempts-1, immediately)

	err := retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		err := check()
		if errors.Is(err, ErrNotYet) {
			return retry.RetryableError(err)
		}
		return err
	})
	require.NoError(t, err, "check did not succeed after %d attempts", attempts)
}

// Repeat runs check n times, each run must succeed.
func Repeat(t *testing.T, n int, check func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		check(t)
		if t.Failed() {
			t.Fatalf("check failed on repetition %d of %d", i+1, n)
		}
	}
}
