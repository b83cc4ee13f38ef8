package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AdminContextMiddleware attaches the acting admin identity to the request.
// Real authentication lives in the gateway in front of this service; here we
// only pick up the forwarded X-Admin-ID header, falling back to the
// configured placeholder so ledger entries always carry an adminId.
func AdminContextMiddleware(defaultAdminID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID := c.Get("X-Admin-ID")
		if adminID == "" {
			adminID = defaultAdminID
		}
		c.Locals("admin_id", adminID)
		return c.Next()
	}
}
