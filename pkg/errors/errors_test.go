package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Creation(t *testing.T) {
	cause := errors.New("underlying error")

	err := NewValidationError("test validation error", cause)

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "test validation error", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.NotNil(t, err.Context)
}

func TestDomainError_WithContext(t *testing.T) {
	err := NewProcessError("test error", nil)

	err = err.WithContext("server", "discord")
	err = err.WithContext("pid", 12345)

	assert.Equal(t, "discord", err.Context["server"])
	assert.Equal(t, 12345, err.Context["pid"])
}

func TestDomainError_ErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		error    *DomainError
		expected string
	}{
		{
			name:     "error without cause",
			error:    NewValidationError("test message", nil),
			expected: "validation: test message",
		},
		{
			name:     "error with cause",
			error:    NewProcessError("test message", errors.New("cause")),
			expected: "process: test message: cause",
		},
		{
			name:     "not found error",
			error:    NewNotFoundError("server not configured", nil),
			expected: "not_found: server not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.error.Error())
		})
	}
}

func TestDomainError_TypeChecking(t *testing.T) {
	validationErr := NewValidationError("validation error", nil)
	processErr := NewProcessError("process error", nil)
	conflictErr := NewConflictError("already running", nil)

	assert.True(t, IsValidationError(validationErr))
	assert.False(t, IsValidationError(processErr))

	assert.True(t, IsProcessError(processErr))
	assert.False(t, IsProcessError(validationErr))

	assert.True(t, IsConflictError(conflictErr))
	assert.False(t, IsConflictError(processErr))

	// Plain errors match nothing
	wrappedErr := errors.New("wrapped")
	assert.False(t, IsValidationError(wrappedErr))
}

func TestDomainError_TypeChecking_ThroughWrapping(t *testing.T) {
	inner := NewNotFoundError("no registry entry", nil)
	outer := fmt.Errorf("stop failed: %w", inner)

	assert.True(t, IsNotFoundError(outer))
	assert.False(t, IsConflictError(outer))
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewProcessError("test error", cause)

	unwrapped := errors.Unwrap(err)
	assert.Equal(t, cause, unwrapped)
}
