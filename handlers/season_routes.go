package handlers

import (
	"domino-admin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSeasonRoutes(app *fiber.App, seasons *services.SeasonService) {
	api := app.Group("/api")

	// Seasons
	api.Get("/seasons", func(c *fiber.Ctx) error {
		list, err := seasons.ListSeasons()
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(list)
	})

	api.Get("/seasons/active", func(c *fiber.Ctx) error {
		season, err := seasons.GetActiveSeason()
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(season)
	})

	api.Post("/seasons", func(c *fiber.Ctx) error {
		var in services.SeasonInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		season, err := seasons.CreateSeason(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(season)
	})

	api.Put("/seasons/:id", func(c *fiber.Ctx) error {
		var in services.SeasonInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		season, err := seasons.UpdateSeason(c.Params("id"), in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(season)
	})

	api.Post("/seasons/:id/activate", func(c *fiber.Ctx) error {
		season, err := seasons.ActivateSeason(c.Params("id"))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(season)
	})

	// Level rewards
	api.Get("/rewards/level", func(c *fiber.Ctx) error {
		list, err := seasons.ListLevelRewards()
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(list)
	})

	api.Post("/rewards/level", func(c *fiber.Ctx) error {
		var in services.LevelRewardInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		reward, err := seasons.CreateLevelReward(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(reward)
	})

	api.Put("/rewards/level/:id", func(c *fiber.Ctx) error {
		var in services.UpdateLevelRewardInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		reward, err := seasons.UpdateLevelReward(c.Params("id"), in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(reward)
	})

	// Daily rewards
	api.Get("/rewards/daily", func(c *fiber.Ctx) error {
		list, err := seasons.ListDailyRewards()
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(list)
	})

	api.Post("/rewards/daily", func(c *fiber.Ctx) error {
		var in services.DailyRewardInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		reward, err := seasons.CreateDailyReward(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(reward)
	})

	api.Put("/rewards/daily/:id", func(c *fiber.Ctx) error {
		var in services.UpdateDailyRewardInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		reward, err := seasons.UpdateDailyReward(c.Params("id"), in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(reward)
	})

	// Events
	api.Get("/events", func(c *fiber.Ctx) error {
		var isActive *bool
		switch c.Query("isActive") {
		case "true":
			v := true
			isActive = &v
		case "false":
			v := false
			isActive = &v
		}
		list, total, err := seasons.ListEvents(services.EventFilters{
			IsActive: isActive,
			Type:     c.Query("type"),
			Limit:    queryInt(c, "limit", 50),
			Offset:   queryInt(c, "offset", 0),
		})
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"events": list, "total": total})
	})

	api.Post("/events", func(c *fiber.Ctx) error {
		var in services.EventInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		event, err := seasons.CreateEvent(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(event)
	})

	api.Put("/events/:id", func(c *fiber.Ctx) error {
		var in services.EventInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		event, err := seasons.UpdateEvent(c.Params("id"), in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(event)
	})
}
