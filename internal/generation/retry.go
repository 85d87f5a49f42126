package generation

import (
	"context"
	"fmt"
	"time"
)

// BackoffFunc returns the delay to wait after the failed attempt with the
// given 0-based index.
type BackoffFunc func(attempt int) time.Duration

// ExponentialBackoff doubles initial after every failed attempt:
// initial, 2*initial, 4*initial, ...
func ExponentialBackoff(initial time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		if attempt < 0 {
			attempt = 0
		}
		return initial * time.Duration(uint64(1)<<uint(attempt))
	}
}

// Policy bounds a retry loop.
type Policy struct {
	// MaxAttempts is the total number of calls; values below 1 mean 1.
	MaxAttempts int
	// Backoff computes the delay between attempts; nil means no delay.
	Backoff BackoffFunc
}

// Default retry settings.
const (
	DefaultMaxAttempts  = 5
	DefaultInitialDelay = time.Second
)

// DefaultPolicy returns 5 attempts with delays of 1s, 2s, 4s and 8s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		Backoff:     ExponentialBackoff(DefaultInitialDelay),
	}
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p Policy) delay(attempt int) time.Duration {
	if p.Backoff == nil {
		return 0
	}
	return p.Backoff(attempt)
}

// Sleeper blocks for d or until ctx is done, returning ctx.Err() in the
// latter case.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the default Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Retry calls fn, passing the 0-based attempt index, until it returns a nil
// error or the policy's attempt budget is spent, sleeping policy.Backoff(i)
// after the i-th failure. No sleep follows the final attempt. It returns the
// value of the successful call, the number of attempts made and the last error.
//
// If ctx is cancelled while sleeping, Retry stops and returns an error that
// wraps ctx.Err().
func Retry[T any](
	ctx context.Context,
	policy Policy,
	sleep Sleeper,
	fn func(ctx context.Context, attempt int) (T, error),
) (T, int, error) {
	if sleep == nil {
		sleep = SleepContext
	}

	var zero T
	maxAttempts := policy.attempts()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		value, err := fn(ctx, attempt)
		if err == nil {
			return value, attempt + 1, nil
		}

		if attempt == maxAttempts-1 {
			return zero, attempt + 1, err
		}

		if sleepErr := sleep(ctx, policy.delay(attempt)); sleepErr != nil {
			return zero, attempt + 1, fmt.Errorf("%w (last error: %v)", sleepErr, err)
		}
	}

	// unreachable: the loop always returns on its last iteration
	return zero, maxAttempts, nil
}
