package process

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
	"github.com/mock-tools/mcp-mockhub/pkg/logging"
)

// SpawnConfig describes how to launch a stub server as a detached process.
type SpawnConfig struct {
	ExecutablePath   string   `yaml:"executable_path"`
	Args             []string `yaml:"args,omitempty"`
	Environment      []string `yaml:"environment,omitempty"`
	WorkingDirectory string   `yaml:"working_directory,omitempty"`

	// LogFilePath receives the child's stdout and stderr. The manager does
	// not speak MCP to the servers it supervises; their stdio transport is
	// only exercised by agent clients that spawn their own instance.
	LogFilePath string `yaml:"log_file_path,omitempty"`
}

// Spawn starts the configured executable detached from the manager: own
// process group, stdin from the null device, output appended to the log file.
// The manager process can exit while the child keeps running.
func Spawn(config SpawnConfig, name string, logger logging.Logger) (int, error) {
	if err := ValidateSpawnConfig(config); err != nil {
		logger.Errorf("Spawn configuration validation failed, server: %s, error: %v", name, err)
		return 0, errors.NewValidationError("invalid spawn configuration", err).WithContext("server", name)
	}

	if err := ensureExecutable(config.ExecutablePath); err != nil {
		return 0, errors.NewPermissionError("server executable is not runnable", err).
			WithContext("server", name).
			WithContext("executable_path", config.ExecutablePath)
	}

	workDir := config.WorkingDirectory
	if workDir == "" {
		absPath, err := filepath.Abs(config.ExecutablePath)
		if err != nil {
			return 0, errors.NewIOError("failed to resolve executable path", err).WithContext("server", name)
		}
		workDir = filepath.Dir(absPath)
	}

	stdin, err := os.Open(os.DevNull)
	if err != nil {
		return 0, errors.NewIOError("failed to open null device", err).WithContext("server", name)
	}
	defer stdin.Close()

	var output *os.File
	if config.LogFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.LogFilePath), 0755); err != nil {
			return 0, errors.NewIOError("failed to create log directory", err).WithContext("server", name)
		}
		output, err = os.OpenFile(config.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return 0, errors.NewIOError("failed to open server log file", err).
				WithContext("server", name).
				WithContext("log_file", config.LogFilePath)
		}
		defer output.Close()
	}

	env := os.Environ()
	env = append(env, config.Environment...)

	cmd := exec.Command(config.ExecutablePath, config.Args...)
	cmd.Dir = workDir
	cmd.Env = env
	cmd.Stdin = stdin
	cmd.Stdout = output
	cmd.Stderr = output

	// Platform-specific detachment is handled in spawn_unix.go / spawn_windows.go
	setupProcessAttributes(cmd)

	logger.Debugf("Spawning server, name: %s, executable: '%s', args: %v, working directory: '%s'",
		name, config.ExecutablePath, config.Args, workDir)

	if err := cmd.Start(); err != nil {
		return 0, errors.NewProcessError("failed to start server process", err).
			WithContext("server", name).
			WithContext("executable_path", config.ExecutablePath)
	}

	pid := cmd.Process.Pid

	// Release rather than Wait: the child is meant to outlive the manager.
	if err := cmd.Process.Release(); err != nil {
		logger.Warnf("Failed to release process handle, server: %s, pid: %d, error: %v", name, pid, err)
	}

	logger.Infof("Server process started, name: %s, pid: %d", name, pid)
	return pid, nil
}

// ensureExecutable checks that the file exists and, on Unix, that an execute
// bit is set (setting it if possible).
func ensureExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.NewIOError("file does not exist", err).WithContext("path", path)
	}

	if runtime.GOOS == "windows" {
		ext := filepath.Ext(path)
		if ext == ".exe" || ext == ".bat" || ext == ".cmd" {
			return nil
		}
		return nil
	}

	mode := info.Mode()
	if mode&0111 != 0 {
		return nil
	}

	if err := os.Chmod(path, mode|0111); err != nil {
		return errors.NewPermissionError("failed to make file executable", err).WithContext("path", path)
	}

	return nil
}
