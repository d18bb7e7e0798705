//go:build !windows

package process

import (
	"syscall"
)

// sendTerminationSignal sends SIGTERM to the process group (negative PID)
// so the whole process tree is asked to shut down.
func sendTerminationSignal(pid int) error {
	return syscall.Kill(-pid, syscall.SIGTERM)
}

// sendKillSignal sends SIGKILL to the process group.
func sendKillSignal(pid int) error {
	return syscall.Kill(-pid, syscall.SIGKILL)
}
