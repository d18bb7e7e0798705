package process

import (
	"strings"

	"github.com/mock-tools/mcp-mockhub/pkg/errors"
)

// ValidateSpawnConfig validates a spawn configuration.
func ValidateSpawnConfig(config SpawnConfig) error {
	if config.ExecutablePath == "" {
		return errors.NewValidationError("executable path cannot be empty", nil)
	}

	if strings.TrimSpace(config.ExecutablePath) != config.ExecutablePath {
		return errors.NewValidationError("executable path has leading or trailing whitespace", nil)
	}

	for i, e := range config.Environment {
		if !strings.Contains(e, "=") {
			return errors.NewValidationError("environment entries must be KEY=VALUE", nil).
				WithContext("index", i).
				WithContext("entry", e)
		}
	}

	return nil
}
