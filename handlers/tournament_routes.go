package handlers

import (
	"domino-admin-system/models"
	"domino-admin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTournamentRoutes(app *fiber.App, tournaments *services.TournamentService) {
	api := app.Group("/api")

	api.Get("/tournaments", func(c *fiber.Ctx) error {
		items, total, err := tournaments.ListTournaments(services.TournamentFilters{
			Status: c.Query("status"),
			Type:   c.Query("type"),
			Limit:  queryInt(c, "limit", 50),
			Offset: queryInt(c, "offset", 0),
		})
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"tournaments": items, "total": total})
	})

	api.Get("/tournaments/:id", func(c *fiber.Ctx) error {
		t, err := tournaments.GetTournament(c.Params("id"))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(t)
	})

	api.Post("/tournaments", func(c *fiber.Ctx) error {
		var in services.CreateTournamentInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		t, err := tournaments.CreateTournament(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	api.Put("/tournaments/:id", func(c *fiber.Ctx) error {
		var in services.UpdateTournamentInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		t, err := tournaments.UpdateTournament(c.Params("id"), in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(t)
	})

	api.Patch("/tournaments/:id/status", func(c *fiber.Ctx) error {
		var body struct {
			Status models.TournamentStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		t, err := tournaments.UpdateStatus(c.Params("id"), body.Status)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(t)
	})

	api.Post("/tournaments/:id/join", func(c *fiber.Ctx) error {
		var body struct {
			PlayerID string `json:"playerId"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		t, err := tournaments.JoinTournament(c.Params("id"), body.PlayerID, adminID(c))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(t)
	})

	api.Delete("/tournaments/:id", func(c *fiber.Ctx) error {
		if err := tournaments.DeleteTournament(c.Params("id")); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "tournament deleted"})
	})
}
