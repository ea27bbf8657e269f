package middleware

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/logging"
)

// Logger writes one JSON line per request to stdout with request_id, method, path, status
// and latency in milliseconds.
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout, nil)
}

// LoggerWithWriter is Logger writing to w, with timestamps in loc (the logging default when nil).
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	logger := logging.NewWithLocation("http", w, loc)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Collected after the handler so the final status is known.
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		logger.Infow("request",
			"request_id", GetRequestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", float64(time.Since(start).Microseconds())/1000,
		)

		return err
	}
}
