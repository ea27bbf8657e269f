package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/config"
	"docvault/internal/status"
)

// StatusReporter runs the startup checks, see status.Checker.
type StatusReporter interface {
	Report(ctx context.Context, cfg *config.AppConfig) status.Result
}

// HealthCheck godoc
// @Summary Health check
// @Description Checks database connectivity
// @Tags operations
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags operations
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Status godoc
// @Summary Application status
// @Description Checks the startup files and the data model
// @Tags operations
// @Produce json
// @Success 200 {object} status.Result
// @Failure 500 {object} status.Result
// @Router /status [get]
func Status(reporter StatusReporter, cfg *config.AppConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := reporter.Report(c.UserContext(), cfg)
		code := fiber.StatusOK
		if res.Status != status.StatusRunning {
			code = fiber.StatusInternalServerError
		}
		return c.Status(code).JSON(res)
	}
}
