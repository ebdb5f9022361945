// Package middleware holds the fiber middleware shared by all routes.
package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request identifier back to the caller.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a uuid, exposes it in the response
// header, and logs the request outcome with it.
func RequestID(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("request_id", id)
		c.Set(RequestIDHeader, id)

		err := c.Next()

		logger.Debug("Handled request",
			slog.String("request_id", id),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
		)
		return err
	}
}
