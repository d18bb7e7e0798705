package manager

import (
	"github.com/mock-tools/mcp-mockhub/pkg/errors"
)

// ValidateServerName validates server name format and constraints.
func ValidateServerName(name string) error {
	if name == "" {
		return errors.NewValidationError("server name cannot be empty", nil)
	}

	if len(name) > 64 {
		return errors.NewValidationError("server name cannot exceed 64 characters", nil)
	}

	for _, char := range name {
		if !isValidNameChar(char) {
			return errors.NewValidationError("server name contains invalid characters: only letters, numbers, hyphens, and underscores are allowed", nil)
		}
	}

	return nil
}

func isValidNameChar(char rune) bool {
	return (char >= 'a' && char <= 'z') ||
		(char >= 'A' && char <= 'Z') ||
		(char >= '0' && char <= '9') ||
		char == '-' || char == '_'
}
