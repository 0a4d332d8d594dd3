//go:build !windows

package process

import (
	"os"
	"syscall"
)

// terminate asks the process to exit; the runner kills it after the grace delay.
func terminate(p *os.Process) error {
	return p.Signal(syscall.SIGTERM)
}
