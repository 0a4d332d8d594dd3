package resilience

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRetrySuccess(t *testing.T) {
	t.Parallel()

	policy := RetryPolicy{
		MaxAttempts: 4,
		BaseDelay:   10 * time.Millisecond,
	}

	var callCount atomic.Int32
	err := Retry(context.Background(), policy, func(int) error {
		callCount.Add(1)
		return nil
	})

	if err != nil {
		t.Errorf("Retry() error = %v, want nil", err)
	}
	if callCount.Load() != 1 {
		t.Errorf("call count = %d, want 1", callCount.Load())
	}
}

func TestRetryEventualSuccess(t *testing.T) {
	t.Parallel()

	policy := RetryPolicy{
		MaxAttempts: 4,
		BaseDelay:   time.Millisecond,
	}

	transientErr := errors.New("transient error")
	var attempts []int

	err := Retry(context.Background(), policy, func(attempt int) error {
		attempts = append(attempts, attempt)
		if attempt < 3 {
			return transientErr
		}
		return nil
	})

	if err != nil {
		t.Errorf("Retry() error = %v, want nil", err)
	}
	if len(attempts) != 3 || attempts[0] != 1 || attempts[2] != 3 {
		t.Errorf("attempts = %v, want [1 2 3]", attempts)
	}
}

func TestRetryExhausted(t *testing.T) {
	t.Parallel()

	policy := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
	}

	var callCount atomic.Int32
	persistentErr := errors.New("persistent error")

	err := Retry(context.Background(), policy, func(int) error {
		callCount.Add(1)
		return persistentErr
	})

	var retryErr *RetryError
	if !errors.As(err, &retryErr) {
		t.Fatalf("Retry() error = %v, want *RetryError", err)
	}
	if retryErr.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", retryErr.Attempts)
	}
	if !errors.Is(err, persistentErr) {
		t.Errorf("Retry() error does not wrap %v", persistentErr)
	}
	if callCount.Load() != 3 {
		t.Errorf("call count = %d, want 3", callCount.Load())
	}
}

func TestRetryNonRetryableReturnedUnchanged(t *testing.T) {
	t.Parallel()

	fatal := errors.New("fatal")
	policy := RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   time.Millisecond,
		IsRetryable: func(err error) bool { return !errors.Is(err, fatal) },
	}

	var callCount atomic.Int32
	err := Retry(context.Background(), policy, func(int) error {
		callCount.Add(1)
		return fatal
	})

	if err != fatal {
		t.Errorf("Retry() error = %v, want %v", err, fatal)
	}
	if callCount.Load() != 1 {
		t.Errorf("call count = %d, want 1", callCount.Load())
	}
}

func TestRetryContextCancellation(t *testing.T) {
	t.Parallel()

	policy := RetryPolicy{
		MaxAttempts: 10,
		BaseDelay:   50 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	var callCount atomic.Int32

	err := Retry(ctx, policy, func(int) error {
		if callCount.Add(1) == 2 {
			cancel()
		}
		return errors.New("keep failing")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retry() error = %v, want context.Canceled", err)
	}
	if callCount.Load() != 2 {
		t.Errorf("call count = %d, want 2", callCount.Load())
	}
}

func TestRetryZeroMaxAttempts(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32
	_ = Retry(context.Background(), RetryPolicy{}, func(int) error {
		callCount.Add(1)
		return errors.New("fail")
	})

	if callCount.Load() != 1 {
		t.Errorf("call count = %d, want 1", callCount.Load())
	}
}

func TestRetryOnRetryHook(t *testing.T) {
	t.Parallel()

	var delays []time.Duration
	policy := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Backoff:     BackoffLinear,
		OnRetry: func(_ int, _ error, d time.Duration) {
			delays = append(delays, d)
		},
	}

	_ = Retry(context.Background(), policy, func(int) error { return errors.New("fail") })

	want := []time.Duration{time.Millisecond, 2 * time.Millisecond}
	if len(delays) != len(want) {
		t.Fatalf("OnRetry called %d times, want %d", len(delays), len(want))
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delay[%d] = %v, want %v", i, delays[i], want[i])
		}
	}
}

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), true},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsRetryableError(tt.err); got != tt.want {
				t.Errorf("IsRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		strategy Backoff
		attempt  int
		base     time.Duration
		maxDelay time.Duration
		want     time.Duration
	}{
		{"exponential first", BackoffExponential, 1, 100 * time.Millisecond, time.Second, 100 * time.Millisecond},
		{"exponential third", BackoffExponential, 3, 100 * time.Millisecond, time.Second, 400 * time.Millisecond},
		{"exponential capped", BackoffExponential, 10, 100 * time.Millisecond, time.Second, time.Second},
		{"linear first", BackoffLinear, 1, 100 * time.Millisecond, 0, 100 * time.Millisecond},
		{"linear fourth", BackoffLinear, 4, 100 * time.Millisecond, 0, 400 * time.Millisecond},
		{"linear capped", BackoffLinear, 4, 100 * time.Millisecond, 250 * time.Millisecond, 250 * time.Millisecond},
		{"zero base", BackoffLinear, 3, 0, 0, 0},
		{"attempt below one", BackoffLinear, 0, 100 * time.Millisecond, 0, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CalculateBackoff(tt.strategy, tt.attempt, tt.base, tt.maxDelay, false)
			if got != tt.want {
				t.Errorf("CalculateBackoff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	t.Parallel()

	base := 100 * time.Millisecond
	for range 50 {
		got := CalculateBackoff(BackoffLinear, 2, base, 0, true)
		if got < base || got >= 3*base {
			t.Fatalf("jittered delay %v outside [%v, %v)", got, base, 3*base)
		}
	}
}
