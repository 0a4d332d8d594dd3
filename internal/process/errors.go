// Package process runs external commands with a timeout, graceful
// termination and captured output.
package process

import (
	"errors"
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// ErrEmptyCommand is returned when Run is called without an argv.
var ErrEmptyCommand = errors.New("process: empty command")

// ErrTimedOut is wrapped by ExternalToolError when the command was killed
// because its timeout elapsed.
var ErrTimedOut = errors.New("process: timed out")

// ExternalToolError reports a command that exited non-zero or timed out.
// It carries the captured output for diagnosis.
type ExternalToolError struct {
	Argv     []string
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// Error implements the error interface.
func (e *ExternalToolError) Error() string {
	var b strings.Builder
	cmd := shellescape.QuoteCommand(e.Argv)
	if e.TimedOut {
		fmt.Fprintf(&b, "%s: timed out", cmd)
	} else {
		fmt.Fprintf(&b, "%s: exit status %d", cmd, e.ExitCode)
	}
	if out := strings.TrimSpace(e.Stderr); out != "" {
		fmt.Fprintf(&b, "\nstderr:\n%s", out)
	}
	if out := strings.TrimSpace(e.Stdout); out != "" {
		fmt.Fprintf(&b, "\nstdout:\n%s", out)
	}
	return b.String()
}

// Is matches ErrTimedOut for timed-out commands.
func (e *ExternalToolError) Is(target error) bool {
	return e.TimedOut && target == ErrTimedOut
}

// Check converts an unsuccessful result into an *ExternalToolError.
// It returns nil for a zero exit code that did not time out.
func Check(argv []string, res Result) error {
	if res.ExitCode == 0 && !res.TimedOut {
		return nil
	}
	return &ExternalToolError{
		Argv:     argv,
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		TimedOut: res.TimedOut,
	}
}
