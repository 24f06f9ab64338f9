// Package handlers implements the HTTP detection API.
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/shiftwatch/shiftwatch/internal/config"
	"github.com/shiftwatch/shiftwatch/internal/logging"
	"github.com/shiftwatch/shiftwatch/internal/models"
)

// Version is injected via ldflags during build.
var Version = "dev"

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	cfg    *config.Config
	logger *logging.Logger
}

// New creates a handler with its dependencies.
func New(cfg *config.Config, logger *logging.Logger) *Handler {
	return &Handler{cfg: cfg, logger: logger}
}

// Health handles health check requests.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   Version,
	})
}

// NotFound handles 404 errors.
func (h *Handler) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "NOT_FOUND",
			Message: "Route not found",
			Path:    c.Path(),
		},
	})
}
