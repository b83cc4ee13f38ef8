package handlers

import (
	"errors"
	"strconv"

	"domino-admin-system/services"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// respondErr maps service errors onto the HTTP error convention:
// validation and bad transitions → 400, missing entities → 404,
// everything else → 500 with the detail kept out of the response body.
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidTransition):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		log.WithError(err).WithField("path", c.Path()).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

// queryInt parses an integer query parameter with a default.
func queryInt(c *fiber.Ctx, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

// adminID returns the acting admin identity set by the admin-context
// middleware.
func adminID(c *fiber.Ctx) string {
	if id, ok := c.Locals("admin_id").(string); ok && id != "" {
		return id
	}
	return "admin"
}
