//go:build windows

package process

import (
	"os"
	"syscall"
)

// sendTerminationSignal sends Ctrl+Break to the child's process group.
// The stub servers were started with CREATE_NEW_PROCESS_GROUP, so the event
// reaches them without disturbing the manager console.
func sendTerminationSignal(pid int) error {
	dll, err := syscall.LoadDLL("kernel32.dll")
	if err != nil {
		return err
	}
	defer dll.Release()

	proc, err := dll.FindProc("GenerateConsoleCtrlEvent")
	if err != nil {
		return err
	}

	result, _, callErr := proc.Call(uintptr(syscall.CTRL_BREAK_EVENT), uintptr(pid))
	if result == 0 {
		return callErr
	}
	return nil
}

// sendKillSignal terminates the process outright.
func sendKillSignal(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return proc.Kill()
}
