//go:build windows

package process

import "os"

// terminate kills the process. Windows has no portable SIGTERM.
func terminate(p *os.Process) error {
	return p.Kill()
}
