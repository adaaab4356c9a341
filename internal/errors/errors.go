package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// SeedError reports the seeding stage that failed together with its cause.
// Records created by earlier stages are left in place.
type SeedError struct {
	Stage string
	Err   error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seeding failed during %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause
func (e *SeedError) Unwrap() error {
	return e.Err
}

// Seeding stages
const (
	StageRootOrganization = "root organization"
	StageHierarchy        = "organization hierarchy"
	StageAccounts         = "accounts"
	StageReferenceData    = "reference data"
)

// Command line errors
var (
	ErrCleanupNotConfirmed = errors.New("you must use --confirm to actually delete data or --dry-run to see what would be deleted")
	ErrInvalidLevel        = errors.New("level must be one of 0, 1, 2, 3")
)

// Configuration Errors
var (
	ErrUnsupportedDatabaseClient = &ConfigurationError{Message: "DATABASE_CLIENT must be one of: postgres, sqlite"}
	ErrUploadProviderIncomplete  = &ConfigurationError{Message: "upload provider configuration missing: CLOUDINARY_NAME, CLOUDINARY_KEY or CLOUDINARY_SECRET"}
)

// Helper Functions

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsSeed checks if an error is a SeedError
func IsSeed(err error) bool {
	var seedErr *SeedError
	return errors.As(err, &seedErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewSeedError wraps err with the stage it occurred in
func NewSeedError(stage string, err error) error {
	return &SeedError{Stage: stage, Err: err}
}
