package process

import (
	"time"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
	"github.com/mock-tools/mcp-mockhub/pkg/logging"
)

const probeInterval = 100 * time.Millisecond

// Terminate stops the process gracefully: termination signal first, then a
// hard kill once the timeout elapses. Returns nil when the process is gone,
// including the case where it was already dead.
func Terminate(pid int, timeout time.Duration, logger logging.Logger) error {
	if pid <= 0 {
		return errors.NewValidationError("invalid PID", nil).WithContext("pid", pid)
	}

	running, err := IsRunning(pid)
	if err != nil {
		return errors.NewProcessError("liveness probe failed", err).WithContext("pid", pid)
	}
	if !running {
		logger.Debugf("Process already gone, pid: %d", pid)
		return nil
	}

	logger.Infof("Sending termination signal, pid: %d, timeout: %v", pid, timeout)
	if err := sendTerminationSignal(pid); err != nil {
		logger.Warnf("Failed to send termination signal, pid: %d, error: %v", pid, err)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		running, err := IsRunning(pid)
		if err != nil {
			return errors.NewProcessError("liveness probe failed during shutdown", err).WithContext("pid", pid)
		}
		if !running {
			logger.Infof("Process terminated gracefully, pid: %d", pid)
			return nil
		}
		time.Sleep(probeInterval)
	}

	logger.Warnf("Process did not terminate within %v, forcing kill, pid: %d", timeout, pid)
	if err := sendKillSignal(pid); err != nil {
		return errors.NewProcessError("failed to kill process", err).WithContext("pid", pid)
	}

	// Give the kill a moment to land before reporting failure.
	for i := 0; i < 10; i++ {
		running, err := IsRunning(pid)
		if err == nil && !running {
			logger.Infof("Process killed, pid: %d", pid)
			return nil
		}
		time.Sleep(probeInterval)
	}

	return errors.NewTimeoutError("process survived kill signal", nil).WithContext("pid", pid)
}
