package resilience

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"syscall"
	"time"
)

// Removal defaults.
const (
	DefaultRemoveAttempts  = 5
	DefaultRemoveBaseDelay = 200 * time.Millisecond
)

// RemoveOptions controls RemoveDirectory.
type RemoveOptions struct {
	MaxAttempts int
	BaseDelay   time.Duration

	// Remove replaces os.RemoveAll. Used by tests to simulate locks.
	Remove func(path string) error

	Logger *slog.Logger
}

// LockedDirectoryError is returned when a directory is still busy after
// every removal attempt.
type LockedDirectoryError struct {
	Path     string
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *LockedDirectoryError) Error() string {
	return fmt.Sprintf("could not remove %s after %d attempts: a process may be locking this directory "+
		"(close editors, file watchers or dev servers using it and try again): %v", e.Path, e.Attempts, e.Err)
}

// Unwrap returns the error of the last attempt.
func (e *LockedDirectoryError) Unwrap() error {
	return e.Err
}

// IsBusyError reports whether err looks like a transient lock held by
// another process: permission denied or resource busy.
func IsBusyError(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EBUSY)
}

// RemoveDirectory deletes path and everything below it. Busy or permission
// failures are retried with a linear backoff of BaseDelay * attempt; any
// other failure is returned at once. A missing path is not an error.
func RemoveDirectory(ctx context.Context, path string, opts RemoveOptions) error {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultRemoveAttempts
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = DefaultRemoveBaseDelay
	}
	remove := opts.Remove
	if remove == nil {
		remove = os.RemoveAll
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}

	policy := RetryPolicy{
		MaxAttempts: opts.MaxAttempts,
		BaseDelay:   opts.BaseDelay,
		Backoff:     BackoffLinear,
		IsRetryable: IsBusyError,
		OnRetry: func(attempt int, err error, delay time.Duration) {
			logger.Debug("directory busy, retrying removal",
				"path", path, "attempt", attempt, "delay", delay, "error", err)
		},
	}

	err := Retry(ctx, policy, func(int) error {
		return remove(path)
	})

	var exhausted *RetryError
	if errors.As(err, &exhausted) {
		return &LockedDirectoryError{Path: path, Attempts: exhausted.Attempts, Err: exhausted.Err}
	}
	if err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
