package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docvault/internal/logging"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the fiber locals key holding the request id.
	RequestIDLocalKey = "request_id"
)

// RequestID takes the incoming X-Request-ID, or a new UUID when absent, and echoes it in the
// response. Handlers find it with GetRequestID; logging.From(c.UserContext()) returns a
// logger already tagged with it.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		logger := logging.DefaultLogger().With("request_id", id)
		c.SetUserContext(logging.With(c.UserContext(), logger))

		return c.Next()
	}
}

// GetRequestID returns the id stored by RequestID, or "" when the middleware did not run.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDLocalKey).(string)
	return id
}
