package handlers

import (
	"net/http"

	"curr-backend/internal/logger"
	"curr-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SeedHandler exposes the reference data seeder over HTTP
type SeedHandler struct {
	seeder service.ReferenceDataSeederInterface
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(seeder service.ReferenceDataSeederInterface) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// SeedResponse is the result of a manual seeding request
type SeedResponse struct {
	Success bool                          `json:"success" example:"true"`
	Message string                        `json:"message" example:"Initial data seeded successfully!"`
	Summary *service.ReferenceSeedSummary `json:"summary,omitempty"`
}

// SeedInitialData seeds the reference data into empty tables
// @Summary Seed initial data
// @Description Seed the default organization, transaction types, currency categories, currency types and account categories. Tables that already hold rows are skipped.
// @Tags seed
// @Produce json
// @Success 200 {object} SeedResponse "Initial data seeded"
// @Failure 500 {object} SeedResponse "Seeding failed"
// @Router /seed/initial-data [post]
func (h *SeedHandler) SeedInitialData(c *gin.Context) {
	summary, err := h.seeder.Seed()
	if err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Manual seeding failed")
		c.JSON(http.StatusInternalServerError, SeedResponse{
			Success: false,
			Message: "Seeding failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, SeedResponse{
		Success: true,
		Message: "Initial data seeded successfully!",
		Summary: summary,
	})
}
