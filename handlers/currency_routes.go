package handlers

import (
	"domino-admin-system/models"
	"domino-admin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCurrencyRoutes(app *fiber.App, currency *services.CurrencyService) {
	api := app.Group("/api")

	api.Post("/currency/transactions", func(c *fiber.Ctx) error {
		var body struct {
			PlayerID string `json:"playerId"`
			Type     string `json:"type"`
			Amount   int    `json:"amount"`
			Reason   string `json:"reason"`
			AdminID  string `json:"adminId"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		admin := body.AdminID
		if admin == "" {
			admin = adminID(c)
		}
		entry, err := currency.ApplyTransaction(body.PlayerID, models.CurrencyType(body.Type), body.Amount, body.Reason, admin)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	})

	api.Get("/currency/transactions", func(c *fiber.Ctx) error {
		items, total, err := currency.ListTransactions(services.TransactionFilters{
			PlayerID: c.Query("playerId"),
			Type:     c.Query("type"),
			Limit:    queryInt(c, "limit", 50),
			Offset:   queryInt(c, "offset", 0),
		})
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"transactions": items, "total": total})
	})
}
