package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"docvault/internal/metrics"
)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters sync.Map // client IP -> *rate.Limiter
}

// NewRateLimiter allows rps requests per second per client with bursts of up to burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{limit: rate.Limit(rps), burst: burst}
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}
	v, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.limit, l.burst))
	return v.(*rate.Limiter)
}

// Handler rejects requests over the limit with 429 and a Retry-After header.
func (l *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.IP()
		if key == "" {
			key = "unknown"
		}

		if !l.limiter(key).Allow() {
			path := c.Route().Path
			if path == "" {
				path = c.Path()
			}
			metrics.RateLimitRejected.WithLabelValues(path).Inc()

			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"request_id": GetRequestID(c),
				"error": fiber.Map{
					"code":    "RATE_LIMITED",
					"message": "too many requests",
				},
			})
		}
		return c.Next()
	}
}
