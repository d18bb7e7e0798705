package manager

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mockhub.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
manager:
  registry_path: /var/run/mockhub/servers.json
  log_directory: /var/log/mockhub
  stop_timeout: 10s
  log_level: debug
servers:
  - name: discord
    executable: /opt/mockhub/discordsrv
    args: ["--log-level", "debug"]
    environment: ["MOCKHUB_SEED=7"]
  - name: gmail
    executable: /opt/mockhub/gmailsrv
    enabled: false
`)

	config, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/run/mockhub/servers.json", config.Manager.RegistryPath)
	assert.Equal(t, "/var/log/mockhub", config.Manager.LogDirectory)
	assert.Equal(t, 10*time.Second, config.Manager.StopTimeout)
	assert.Equal(t, "debug", config.Manager.LogLevel)

	require.Len(t, config.Servers, 2)
	assert.Equal(t, "discord", config.Servers[0].Name)
	assert.Equal(t, []string{"--log-level", "debug"}, config.Servers[0].Args)
	require.NotNil(t, config.Servers[1].Enabled)
	assert.False(t, *config.Servers[1].Enabled)
}

func TestLoadConfigFromFile_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
servers:
  - name: slack
    executable: /opt/mockhub/slacksrv
`)

	config, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	assert.NotEmpty(t, config.Manager.RegistryPath)
	assert.NotEmpty(t, config.Manager.LogDirectory)
	assert.Equal(t, 5*time.Second, config.Manager.StopTimeout)
	assert.Equal(t, "info", config.Manager.LogLevel)
}

func TestLoadConfigFromFile_MissingFile(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigFromFile_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "servers: [unclosed")
	_, err := LoadConfigFromFile(path)
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{
			name:      "nil config",
			config:    nil,
			expectErr: true,
		},
		{
			name:      "empty config",
			config:    &Config{},
			expectErr: false,
		},
		{
			name: "missing executable",
			config: &Config{
				Servers: []ServerConfig{{Name: "discord"}},
			},
			expectErr: true,
		},
		{
			name: "invalid server name",
			config: &Config{
				Servers: []ServerConfig{{Name: "bad name!", Executable: "x"}},
			},
			expectErr: true,
		},
		{
			name: "duplicate server name",
			config: &Config{
				Servers: []ServerConfig{
					{Name: "discord", Executable: "a"},
					{Name: "discord", Executable: "b"},
				},
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.config)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateServerName(t *testing.T) {
	assert.NoError(t, ValidateServerName("discord"))
	assert.NoError(t, ValidateServerName("woo_commerce-2"))
	assert.Error(t, ValidateServerName(""))
	assert.Error(t, ValidateServerName("has space"))
	assert.Error(t, ValidateServerName(string(make([]byte, 65))))
}
