package ui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// StageReporter renders scaffold stages through a StageDisplay. Warnings
// are buffered and printed by Close so they never interleave with an
// animated display.
type StageReporter struct {
	progress Progress
	theme    *Theme
	writer   io.Writer

	mu       sync.Mutex
	display  StageDisplay
	started  time.Time
	warnings []string
	failed   string
}

// NewStageReporter creates a StageReporter drawing through progress and
// printing warnings and failures to w.
func NewStageReporter(progress Progress, theme *Theme, w io.Writer) *StageReporter {
	return &StageReporter{progress: progress, theme: theme, writer: w}
}

// StageStarted begins a stage. The first call creates the display over
// total stages.
func (r *StageReporter) StageStarted(name string, _, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.display == nil {
		r.display = r.progress.Stages(total)
	}
	r.display.Begin(name)
	r.started = time.Now()
}

// StageFinished completes a stage, recording the failure if err is set.
func (r *StageReporter) StageFinished(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.display == nil {
		return
	}
	if err != nil {
		r.failed = fmt.Sprintf("%s failed after %s", name, time.Since(r.started).Round(time.Millisecond))
		return
	}
	r.display.Complete()
}

// Warn records a non-fatal problem.
func (r *StageReporter) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, msg)
}

// Warnings returns the recorded warnings.
func (r *StageReporter) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.warnings...)
}

// Close removes the display and prints buffered warnings and the
// failure, if any.
func (r *StageReporter) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.display != nil {
		r.display.Close()
		r.display = nil
	}
	for _, w := range r.warnings {
		_, _ = fmt.Fprintf(r.writer, "%s %s\n", r.theme.Warning().Render("warning:"), w)
	}
	if r.failed != "" {
		_, _ = fmt.Fprintf(r.writer, "%s %s\n", r.theme.Error().Render("error:"), r.failed)
	}
}
