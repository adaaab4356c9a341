package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := NewValidationError("name", "is required")
		assert.Equal(t, "validation error: name - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := NewValidationError("", "bad input")
		assert.Equal(t, "validation error: bad input", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("level", "out of range")))
		assert.False(t, IsValidation(ErrCleanupNotConfirmed))
	})
}

func TestConfigurationError(t *testing.T) {
	assert.Equal(t, "DATABASE_CLIENT must be one of: postgres, sqlite", ErrUnsupportedDatabaseClient.Error())
	assert.True(t, IsConfiguration(ErrUploadProviderIncomplete))
	assert.True(t, IsConfiguration(NewConfigurationError("missing")))
	assert.False(t, IsConfiguration(ErrInvalidLevel))
}

func TestSeedError(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("Error message names the stage", func(t *testing.T) {
		err := NewSeedError(StageHierarchy, cause)
		assert.Equal(t, "seeding failed during organization hierarchy: connection refused", err.Error())
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		err := NewSeedError(StageAccounts, cause)
		assert.True(t, errors.Is(err, cause))

		var seedErr *SeedError
		assert.True(t, errors.As(err, &seedErr))
		assert.Equal(t, StageAccounts, seedErr.Stage)
	})

	t.Run("IsSeed helper", func(t *testing.T) {
		assert.True(t, IsSeed(fmt.Errorf("initialize: %w", NewSeedError(StageRootOrganization, cause))))
		assert.False(t, IsSeed(cause))
	})
}
