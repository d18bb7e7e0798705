package manager

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
)

// Default application name used for state directories.
const DefaultAppName = "mockhub"

// Config is the top-level configuration file structure.
type Config struct {
	Manager ManagerOptions `yaml:"manager"`
	Servers []ServerConfig `yaml:"servers"`
}

// ManagerOptions holds manager-level settings.
type ManagerOptions struct {
	// RegistryPath is the JSON file tracking server PIDs.
	RegistryPath string `yaml:"registry_path,omitempty"`

	// LogDirectory receives per-server log files.
	LogDirectory string `yaml:"log_directory,omitempty"`

	// ServerDirectory, when set, is scanned for stub server binaries in
	// addition to the explicitly configured servers.
	ServerDirectory string `yaml:"server_directory,omitempty"`

	// StopTimeout is how long to wait after the termination signal before
	// killing a server.
	StopTimeout time.Duration `yaml:"stop_timeout,omitempty"`

	LogLevel string `yaml:"log_level,omitempty"`
}

// ServerConfig describes one managed stub server.
type ServerConfig struct {
	Name        string   `yaml:"name"`
	Executable  string   `yaml:"executable"`
	Args        []string `yaml:"args,omitempty"`
	Environment []string `yaml:"environment,omitempty"`
	Enabled     *bool    `yaml:"enabled,omitempty"` // pointer to distinguish unset from false
}

// LoadConfigFromFile loads manager configuration from a YAML file.
func LoadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.NewIOError("failed to read configuration file", err).WithContext("filename", filename)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.NewValidationError("failed to parse YAML configuration", err).WithContext("filename", filename)
	}

	setConfigDefaults(&config)

	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns a configuration usable without any config file:
// state under the user's home directory, no configured servers.
func DefaultConfig() *Config {
	config := &Config{}
	setConfigDefaults(config)
	return config
}

// ValidateConfig validates the entire configuration structure.
func ValidateConfig(config *Config) error {
	if config == nil {
		return errors.NewValidationError("configuration cannot be nil", nil)
	}

	if config.Manager.StopTimeout < 0 {
		return errors.NewValidationError("stop timeout cannot be negative", nil)
	}

	seen := make(map[string]bool)
	for i, server := range config.Servers {
		if err := ValidateServerName(server.Name); err != nil {
			return errors.NewValidationError("invalid server name", err).WithContext("server_index", i)
		}
		if server.Executable == "" {
			return errors.NewValidationError("server executable cannot be empty", nil).WithContext("server", server.Name)
		}
		if seen[server.Name] {
			return errors.NewConflictError("duplicate server name", nil).WithContext("server", server.Name)
		}
		seen[server.Name] = true
	}

	return nil
}

func setConfigDefaults(config *Config) {
	if config.Manager.RegistryPath == "" {
		config.Manager.RegistryPath = filepath.Join(stateDirectory(), "servers.json")
	}
	if config.Manager.LogDirectory == "" {
		config.Manager.LogDirectory = filepath.Join(stateDirectory(), "logs")
	}
	if config.Manager.StopTimeout == 0 {
		config.Manager.StopTimeout = 5 * time.Second
	}
	if config.Manager.LogLevel == "" {
		config.Manager.LogLevel = "info"
	}
}

// stateDirectory returns the per-user state directory for the manager.
func stateDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), DefaultAppName)
	}
	return filepath.Join(home, "."+DefaultAppName)
}
