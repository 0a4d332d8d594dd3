// Package resilience provides retry, directory removal and best-effort
// fallback primitives used around external tools and the filesystem.
package resilience

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Backoff selects how the delay between attempts grows.
type Backoff int

const (
	// BackoffExponential doubles the delay after every attempt.
	BackoffExponential Backoff = iota

	// BackoffLinear waits BaseDelay * attempt after the n-th failed attempt.
	BackoffLinear
)

// RetryPolicy defines the retry behavior for operations.
type RetryPolicy struct {
	// MaxAttempts is the total number of calls, including the first one.
	// Values below 1 are treated as 1.
	MaxAttempts int `yaml:"max_attempts"`

	// BaseDelay is the delay unit used by the backoff strategy.
	BaseDelay time.Duration `yaml:"base_delay"`

	// MaxDelay caps the delay between attempts. Zero means no cap.
	MaxDelay time.Duration `yaml:"max_delay"`

	Backoff Backoff `yaml:"-"`

	// UseJitter scales each delay by a random factor in [0.5, 1.5).
	UseJitter bool `yaml:"use_jitter"`

	// IsRetryable classifies errors. When nil every error except context
	// cancellation is retried.
	IsRetryable func(error) bool `yaml:"-"`

	// OnRetry, when set, is called before sleeping with the failed attempt
	// number (1-based), its error and the upcoming delay.
	OnRetry func(attempt int, err error, delay time.Duration) `yaml:"-"`
}

// RetryError is returned when every attempt failed with a retryable error.
type RetryError struct {
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *RetryError) Error() string {
	return "all retry attempts exhausted: " + e.Err.Error()
}

// Unwrap returns the error of the last attempt.
func (e *RetryError) Unwrap() error {
	return e.Err
}

// Retry calls fn until it succeeds, returns a non-retryable error, the
// context ends, or the attempts run out. fn receives the 1-based attempt
// number. A non-retryable error is returned unchanged; exhaustion returns
// a *RetryError wrapping the last error.
func Retry(ctx context.Context, policy RetryPolicy, fn func(attempt int) error) error {
	maxAttempts := max(policy.MaxAttempts, 1)
	classify := policy.IsRetryable
	if classify == nil {
		classify = IsRetryableError
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		if !classify(err) {
			return err
		}
		if attempt == maxAttempts {
			break
		}

		delay := CalculateBackoff(policy.Backoff, attempt, policy.BaseDelay, policy.MaxDelay, policy.UseJitter)
		if policy.OnRetry != nil {
			policy.OnRetry(attempt, err, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return &RetryError{Attempts: maxAttempts, Err: lastErr}
}

// CalculateBackoff returns the delay after the given failed attempt (1-based).
// Exponential: baseDelay * 2^(attempt-1). Linear: baseDelay * attempt.
// A positive maxDelay caps the result, jitter included.
func CalculateBackoff(strategy Backoff, attempt int, baseDelay, maxDelay time.Duration, useJitter bool) time.Duration {
	if baseDelay <= 0 {
		return 0
	}
	attempt = max(attempt, 1)

	var delay time.Duration
	switch strategy {
	case BackoffLinear:
		delay = baseDelay * time.Duration(attempt)
	default:
		delay = baseDelay
		for range attempt - 1 {
			delay *= 2
			if maxDelay > 0 && delay > maxDelay {
				break
			}
		}
	}

	if useJitter {
		delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	}
	if maxDelay > 0 && delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

// IsRetryableError is the default classifier: everything except context
// cancellation and deadline errors.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
