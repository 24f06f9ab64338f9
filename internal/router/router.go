// Package router wires the HTTP detection API's routes and middlewares.
package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/shiftwatch/shiftwatch/internal/config"
	"github.com/shiftwatch/shiftwatch/internal/handlers"
	"github.com/shiftwatch/shiftwatch/internal/logging"
)

// Setup configures all routes and middlewares.
func Setup(app *fiber.App, logger *logging.Logger, cfg *config.Config) *handlers.Handler {
	h := handlers.New(cfg, logger)

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger))

	app.Get("/health", h.Health)

	v1 := app.Group("/v1")
	v1.Post("/detect", h.Detect)

	app.Use(h.NotFound)

	return h
}
