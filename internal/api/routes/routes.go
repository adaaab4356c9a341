package routes

import (
	"curr-backend/docs"
	"curr-backend/internal/api/handlers"
	"curr-backend/internal/api/middleware"
	"curr-backend/internal/config"
	"curr-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, seeder service.ReferenceDataSeederInterface) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))

	// Initialize handlers
	upload := cfg.Upload()
	healthHandler := handlers.NewHealthHandler(db, &upload)
	seedHandler := handlers.NewSeedHandler(seeder)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.Register(router)
	}

	// Seeding
	router.POST("/seed/initial-data", seedHandler.SeedInitialData)

	return router
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowHeaders = append(config.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	config.ExposeHeaders = []string{middleware.RequestIDHeader}
	return config
}
