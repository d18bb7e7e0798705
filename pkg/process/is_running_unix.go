//go:build !windows

package process

import (
	"os"
	"syscall"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
)

// IsRunning reports whether a process with the given PID exists.
func IsRunning(pid int) (bool, error) {
	if pid <= 0 {
		return false, errors.NewValidationError("invalid PID", nil).WithContext("pid", pid)
	}

	// On Unix, FindProcess always succeeds regardless of whether the process
	// exists. Signal 0 performs the actual existence check.
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false, err
	}

	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true, nil
	}
	if err.Error() == "os: process already finished" {
		return false, nil
	}
	errno, ok := err.(syscall.Errno)
	if !ok {
		return false, err
	}
	switch errno {
	case syscall.ESRCH:
		return false, nil
	case syscall.EPERM:
		// The process exists but belongs to another user.
		return true, nil
	}
	return false, err
}
