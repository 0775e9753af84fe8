package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// UserContextMiddleware extracts the caller identity forwarded by the gateway.
// The platform never authenticates callers itself; it only compares the
// identity against record owners (developer, platform owner).
func UserContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing X-User-ID header, request must come through the gateway",
			})
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}

// CallerID returns the identity set by UserContextMiddleware.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
