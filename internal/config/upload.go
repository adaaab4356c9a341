package config

import (
	apperrors "curr-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	uploadProviderCloudinary = "cloudinary"
	defaultUploadFolder      = "strapi-uploads"
)

// UploadConfig is the declarative media-upload provider configuration
type UploadConfig struct {
	Provider        string                `json:"provider" validate:"required,eq=cloudinary"`
	ProviderOptions UploadProviderOptions `json:"providerOptions"`
	ActionOptions   UploadActionOptions   `json:"actionOptions"`
}

// UploadProviderOptions carries the Cloudinary account credentials
type UploadProviderOptions struct {
	CloudName string `json:"cloud_name" validate:"required"`
	APIKey    string `json:"api_key" validate:"required"`
	APISecret string `json:"-" validate:"required"`
}

// UploadActionOptions are passed to the provider per action
type UploadActionOptions struct {
	Upload       UploadTarget `json:"upload"`
	UploadStream UploadTarget `json:"uploadStream"`
	Delete       struct{}     `json:"delete"`
}

// UploadTarget selects the preset and folder for uploaded files
type UploadTarget struct {
	UploadPreset string `json:"upload_preset,omitempty"`
	Folder       string `json:"folder"`
}

// Upload builds the upload provider configuration from the loaded settings
func (c *Config) Upload() UploadConfig {
	target := UploadTarget{
		UploadPreset: c.CloudinaryUploadPreset,
		Folder:       c.CloudinaryFolder,
	}
	if target.Folder == "" {
		target.Folder = defaultUploadFolder
	}

	return UploadConfig{
		Provider: uploadProviderCloudinary,
		ProviderOptions: UploadProviderOptions{
			CloudName: c.CloudinaryName,
			APIKey:    c.CloudinaryKey,
			APISecret: c.CloudinarySecret,
		},
		ActionOptions: UploadActionOptions{
			Upload:       target,
			UploadStream: target,
		},
	}
}

// Validate reports whether the provider credentials are complete
func (u UploadConfig) Validate() error {
	if err := validator.New().Struct(u); err != nil {
		return apperrors.ErrUploadProviderIncomplete
	}
	return nil
}

// Configured is a convenience wrapper around Validate
func (u UploadConfig) Configured() bool {
	return u.Validate() == nil
}
