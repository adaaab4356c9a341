// Package cli holds the start-up steps shared by the command-line tools.
package cli

import (
	"curr-backend/internal/config"
	"curr-backend/internal/database"
	"curr-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectFunc opens the database a command works on
type ConnectFunc func() (*gorm.DB, error)

// LoadEnv reads .env from the working directory when present
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}
}

// Connect loads the configuration, sets up logging and opens the configured database.
// GORM's own logging is silenced so command output stays readable.
func Connect() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger.Setup(logger.Options{Level: cfg.LogLevel, Format: "text", File: cfg.LogFile})
	logger.New().WithFields(cfg.DatabaseSummary()).Info("Database config")

	return database.Initialize(cfg.DatabaseClient, cfg.DatabaseURL, &database.Options{
		LogLevel: gormlogger.Silent,
	})
}
