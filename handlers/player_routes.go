package handlers

import (
	"domino-admin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPlayerRoutes(app *fiber.App, players *services.PlayerService) {
	api := app.Group("/api")

	api.Get("/players", func(c *fiber.Ctx) error {
		list, total, err := players.ListPlayers(services.PlayerFilters{
			Tier:   c.Query("tier"),
			Status: c.Query("status"),
			Search: c.Query("search"),
			Limit:  queryInt(c, "limit", 50),
			Offset: queryInt(c, "offset", 0),
		})
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"players": list, "total": total})
	})

	api.Get("/players/:id", func(c *fiber.Ctx) error {
		player, err := players.GetPlayer(c.Params("id"))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(player)
	})

	api.Post("/players", func(c *fiber.Ctx) error {
		var in services.CreatePlayerInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		player, err := players.CreatePlayer(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(player)
	})

	api.Put("/players/:id", func(c *fiber.Ctx) error {
		var in services.UpdatePlayerInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		player, err := players.UpdatePlayer(c.Params("id"), in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(player)
	})

	// Ranked point adjustment always re-runs the tier classifier.
	api.Post("/players/:id/adjust-points", func(c *fiber.Ctx) error {
		var body struct {
			Delta int `json:"delta"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		player, err := players.AdjustRankedPoints(c.Params("id"), body.Delta)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(player)
	})

	api.Post("/players/:id/ban", func(c *fiber.Ctx) error {
		var body struct {
			Reason   string `json:"reason"`
			Duration int    `json:"duration"` // days, informational
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		player, err := players.BanPlayer(c.Params("id"), body.Reason, body.Duration)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "player banned", "player": player})
	})

	api.Post("/players/:id/unban", func(c *fiber.Ctx) error {
		player, err := players.UnbanPlayer(c.Params("id"))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "player unbanned", "player": player})
	})

	api.Post("/players/:id/suspend", func(c *fiber.Ctx) error {
		player, err := players.SuspendPlayer(c.Params("id"))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "player suspended", "player": player})
	})
}
