package handlers

import (
	"domino-admin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, stats *services.StatsService, leaderboardLimit int) {
	api := app.Group("/api")

	api.Get("/dashboard/stats", func(c *fiber.Ctx) error {
		out, err := stats.GetDashboardStats()
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(out)
	})

	api.Get("/leaderboard", func(c *fiber.Ctx) error {
		players, err := stats.GetLeaderboard(queryInt(c, "limit", leaderboardLimit))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(players)
	})

	// Tier ladder, lowest first. The admin UI uses it to populate the tier
	// filter dropdown.
	api.Get("/tiers", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"tiers": services.TierNames()})
	})
}
