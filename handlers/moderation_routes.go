package handlers

import (
	"domino-admin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupModerationRoutes(app *fiber.App, moderation *services.ModerationService) {
	api := app.Group("/api")

	api.Get("/anticheat/logs", func(c *fiber.Ctx) error {
		items, total, err := moderation.ListLogs(services.AntiCheatFilters{
			PlayerID:      c.Query("playerId"),
			DetectionType: c.Query("detectionType"),
			RiskLevel:     c.Query("riskLevel"),
			Status:        c.Query("status"),
			Limit:         queryInt(c, "limit", 50),
			Offset:        queryInt(c, "offset", 0),
		})
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"logs": items, "total": total})
	})

	api.Post("/anticheat/logs", func(c *fiber.Ctx) error {
		var in services.CreateLogInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		entry, err := moderation.CreateLog(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	})

	api.Put("/anticheat/logs/:id", func(c *fiber.Ctx) error {
		var in services.ReviewLogInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		entry, err := moderation.ReviewLog(c.Params("id"), in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(entry)
	})
}
