// Package scaffold drives a project from validated options to a
// generated directory through a fixed sequence of stages.
package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scaffold package.
var (
	// ErrProjectExists indicates the target directory already exists.
	ErrProjectExists = errors.New("project directory already exists")

	// ErrProjectLocked indicates another scaffold holds the lock for the same directory.
	ErrProjectLocked = errors.New("project directory is being scaffolded by another process")
)

// StageError reports the stage a run aborted in. Nothing is rolled back:
// files written by earlier stages stay on disk.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}
