package config

import (
	"fmt"
	"net/url"
	"strings"

	apperrors "curr-backend/internal/errors"

	"github.com/spf13/viper"
)

// Supported DATABASE_CLIENT values
const (
	DatabaseClientPostgres = "postgres"
	DatabaseClientSQLite   = "sqlite"
)

// DefaultOrganizationName is the cooperative created by the seeders when no name is given
const DefaultOrganizationName = "Zöld források szövetkezet @Szupatak"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFormat   string `mapstructure:"LOG_FORMAT"`
	LogFile     string `mapstructure:"LOG_FILE"`

	// Seeding
	ForceSeed bool `mapstructure:"FORCE_SEED"`

	// HTTP
	CORSAllowOrigins []string `mapstructure:"CORS_ALLOW_ORIGINS"`
	EnablePprof      bool     `mapstructure:"ENABLE_PPROF"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseClient   string `mapstructure:"DATABASE_CLIENT"`
	DatabaseHost     string `mapstructure:"DATABASE_HOST"`
	DatabasePort     string `mapstructure:"DATABASE_PORT"`
	DatabaseName     string `mapstructure:"DATABASE_NAME"`
	DatabaseUsername string `mapstructure:"DATABASE_USERNAME"`
	DatabasePassword string `mapstructure:"DATABASE_PASSWORD"`
	DatabaseSSL      bool   `mapstructure:"DATABASE_SSL"`
	DatabaseFilename string `mapstructure:"DATABASE_FILENAME"`

	// Cloudinary upload provider
	CloudinaryName         string `mapstructure:"CLOUDINARY_NAME"`
	CloudinaryKey          string `mapstructure:"CLOUDINARY_KEY"`
	CloudinarySecret       string `mapstructure:"CLOUDINARY_SECRET"`
	CloudinaryUploadPreset string `mapstructure:"CLOUDINARY_UPLOAD_PRESET"`
	CloudinaryFolder       string `mapstructure:"CLOUDINARY_FOLDER"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.DatabaseClient = strings.ToLower(strings.TrimSpace(config.DatabaseClient))

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "1337")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("LOG_FILE", "")

	viper.SetDefault("FORCE_SEED", false)

	viper.SetDefault("CORS_ALLOW_ORIGINS", []string{"*"})
	viper.SetDefault("ENABLE_PPROF", false)

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_CLIENT", DatabaseClientPostgres)
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_NAME", "curr")
	viper.SetDefault("DATABASE_USERNAME", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_SSL", false)
	viper.SetDefault("DATABASE_FILENAME", ".tmp/data.db")

	// Upload provider defaults
	viper.SetDefault("CLOUDINARY_NAME", "")
	viper.SetDefault("CLOUDINARY_KEY", "")
	viper.SetDefault("CLOUDINARY_SECRET", "")
	viper.SetDefault("CLOUDINARY_UPLOAD_PRESET", "")
	viper.SetDefault("CLOUDINARY_FOLDER", defaultUploadFolder)
}

func buildDatabaseURL(config *Config) string {
	if config.DatabaseClient == DatabaseClientSQLite {
		return config.DatabaseFilename + "?_pragma=foreign_keys(1)"
	}

	sslMode := "disable"
	if config.DatabaseSSL {
		sslMode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(config.DatabaseUsername, config.DatabasePassword),
		Host:     config.DatabaseHost + ":" + config.DatabasePort,
		Path:     "/" + config.DatabaseName,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

func validate(config *Config) error {
	switch config.DatabaseClient {
	case DatabaseClientPostgres:
		if config.DatabaseName == "" {
			return fmt.Errorf("database name is required")
		}
	case DatabaseClientSQLite:
		if config.DatabaseFilename == "" {
			return fmt.Errorf("database filename is required")
		}
	default:
		return apperrors.ErrUnsupportedDatabaseClient
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DatabaseSummary describes the database connection for log output, with the password masked
func (c *Config) DatabaseSummary() map[string]interface{} {
	password := "EMPTY"
	if c.DatabasePassword != "" {
		password = "***"
	}
	return map[string]interface{}{
		"client":   c.DatabaseClient,
		"host":     c.DatabaseHost,
		"port":     c.DatabasePort,
		"name":     c.DatabaseName,
		"username": c.DatabaseUsername,
		"password": password,
	}
}
