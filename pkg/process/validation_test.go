package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSpawnConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    SpawnConfig
		expectErr bool
	}{
		{
			name: "valid config",
			config: SpawnConfig{
				ExecutablePath: "/opt/mockhub/discordsrv",
				Args:           []string{"--log-level", "debug"},
				Environment:    []string{"MOCKHUB_SEED=42"},
			},
			expectErr: false,
		},
		{
			name:      "empty executable path",
			config:    SpawnConfig{},
			expectErr: true,
		},
		{
			name: "whitespace in executable path",
			config: SpawnConfig{
				ExecutablePath: " /opt/mockhub/discordsrv",
			},
			expectErr: true,
		},
		{
			name: "malformed environment entry",
			config: SpawnConfig{
				ExecutablePath: "/opt/mockhub/gmailsrv",
				Environment:    []string{"NOT_A_PAIR"},
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpawnConfig(tt.config)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsRunning_InvalidPID(t *testing.T) {
	_, err := IsRunning(0)
	assert.Error(t, err)

	_, err = IsRunning(-5)
	assert.Error(t, err)
}
