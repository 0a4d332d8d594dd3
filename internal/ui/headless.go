package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether the UI may prompt and animate. Without
// a terminal on both stdin and stdout, or in CI, the UI runs headless:
// no prompts, and progress is written as plain lines.
type HeadlessManager struct {
	forced *bool
	getenv func(string) string
	stdin  uintptr
	stdout uintptr
}

// NewHeadlessManager creates a HeadlessManager that inspects the process's
// stdin, stdout and CI environment.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{
		getenv: os.Getenv,
		stdin:  os.Stdin.Fd(),
		stdout: os.Stdout.Fd(),
	}
}

// IsHeadless returns true when the UI should operate in headless mode.
// ForceHeadless overrides detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	if h.getenv != nil && h.getenv("CI") != "" {
		return true
	}
	return !isTerminal(h.stdin) || !isTerminal(h.stdout)
}

// ForceHeadless overrides detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
