package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/detektor-id/detektor-api/internal/config"
	"github.com/detektor-id/detektor-api/internal/handler"
	"github.com/detektor-id/detektor-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	DetectHandler *handler.DetectHandler
	RateLimiter   fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.DetectHandler != nil {
		detect := app.Group("/api/detect")
		deps.DetectHandler.Register(detect, deps.RateLimiter)
	}

	app.Get("/metrics", observability.MetricsHandler())
}
