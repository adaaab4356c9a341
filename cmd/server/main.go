package main

import (
	"curr-backend/internal/api/routes"
	"curr-backend/internal/config"
	"curr-backend/internal/database"
	"curr-backend/internal/logger"
	"curr-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			CURR Backend API
//	@version		1.0
//	@description	Administrative API of the CURR cooperative bookkeeping backend: health checks and reference data seeding.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:1337
//	@BasePath	/

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	log := logger.New()
	log.WithFields(cfg.DatabaseSummary()).Info("Database config")

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseClient, cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}
	defer database.Close(db)

	if upload := cfg.Upload(); !upload.Configured() {
		log.Warn("Cloudinary upload provider is not configured")
	}

	// Seed reference data before serving; failures are logged and startup continues
	seeder, err := service.NewReferenceDataSeederForDB(db, log)
	if err != nil {
		logrus.Fatal("Failed to load reference data: ", err)
	}
	seeder.Bootstrap(cfg.IsProduction(), cfg.ForceSeed)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, seeder)

	log.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
