package handlers

import (
	"fmt"
	"path/filepath"

	"domino-admin-system/services"
	"domino-admin-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupContentRoutes(app *fiber.App, content *services.ContentService) {
	api := app.Group("/api")

	// Game rooms
	api.Get("/game-rooms", func(c *fiber.Ctx) error {
		rooms, err := content.ListGameRooms()
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(rooms)
	})

	api.Post("/game-rooms", func(c *fiber.Ctx) error {
		var in services.GameRoomInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		room, err := content.CreateGameRoom(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(room)
	})

	api.Put("/game-rooms/:id", func(c *fiber.Ctx) error {
		var in services.GameRoomInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		room, err := content.UpdateGameRoom(c.Params("id"), in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(room)
	})

	api.Delete("/game-rooms/:id", func(c *fiber.Ctx) error {
		if err := content.DeleteGameRoom(c.Params("id")); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "game room deleted"})
	})

	// News
	api.Get("/news", func(c *fiber.Ctx) error {
		items, err := content.ListNews()
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(items)
	})

	api.Post("/news", func(c *fiber.Ctx) error {
		var in services.NewsInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		item, err := content.CreateNews(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	// Slider image upload for a news item.
	api.Post("/news/:id/image", func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil || file.Size == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
		}
		ext := filepath.Ext(file.Filename)
		if ext == "" {
			ext = ".jpg"
		}
		key := fmt.Sprintf("news/%s%s", uuid.NewString(), ext)
		url, err := utils.UploadFile(file, key)
		if err != nil {
			return respondErr(c, err)
		}
		item, err := content.UpdateNews(c.Params("id"), services.NewsInput{ImageURL: url})
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(item)
	})

	api.Put("/news/:id", func(c *fiber.Ctx) error {
		var in services.NewsInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		item, err := content.UpdateNews(c.Params("id"), in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(item)
	})

	api.Delete("/news/:id", func(c *fiber.Ctx) error {
		if err := content.DeleteNews(c.Params("id")); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "news deleted"})
	})

	// XP boosters
	api.Get("/xp-boosters", func(c *fiber.Ctx) error {
		boosters, err := content.ListXpBoosters()
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(boosters)
	})

	api.Post("/xp-boosters", func(c *fiber.Ctx) error {
		var in services.XpBoosterInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		booster, err := content.CreateXpBooster(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(booster)
	})

	api.Post("/xp-boosters/:id/deactivate", func(c *fiber.Ctx) error {
		booster, err := content.DeactivateXpBooster(c.Params("id"))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(booster)
	})

	// Pairing services
	api.Get("/pairing-services", func(c *fiber.Ctx) error {
		list, err := content.ListPairingServices()
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(list)
	})

	api.Post("/pairing-services", func(c *fiber.Ctx) error {
		var in services.PairingServiceInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		svc, err := content.CreatePairingService(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(svc)
	})

	api.Put("/pairing-services/:id", func(c *fiber.Ctx) error {
		var in services.PairingServiceInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		svc, err := content.UpdatePairingService(c.Params("id"), in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(svc)
	})

	api.Delete("/pairing-services/:id", func(c *fiber.Ctx) error {
		if err := content.DeletePairingService(c.Params("id")); err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"message": "pairing service deleted"})
	})
}
