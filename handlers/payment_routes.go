package handlers

import (
	"fmt"
	"path/filepath"

	"domino-admin-system/services"
	"domino-admin-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupPaymentRoutes(app *fiber.App, payments *services.PaymentService) {
	api := app.Group("/api")

	api.Get("/payment-transactions", func(c *fiber.Ctx) error {
		items, total, err := payments.ListPayments(services.PaymentFilters{
			PlayerID:      c.Query("playerId"),
			Status:        c.Query("status"),
			PaymentMethod: c.Query("paymentMethod"),
			Limit:         queryInt(c, "limit", 50),
			Offset:        queryInt(c, "offset", 0),
		})
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(fiber.Map{"transactions": items, "total": total})
	})

	api.Get("/payment-transactions/:id", func(c *fiber.Ctx) error {
		payment, err := payments.GetPayment(c.Params("id"))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(payment)
	})

	api.Post("/payment-transactions", func(c *fiber.Ctx) error {
		var in services.CreatePaymentInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		payment, err := payments.CreatePayment(in)
		if err != nil {
			return respondErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(payment)
	})

	// Transfer receipt upload, attached before approval. The payment is
	// checked before the file goes to object storage so a bad id cannot
	// leave an orphaned upload behind.
	api.Post("/payment-transactions/:id/proof", func(c *fiber.Ctx) error {
		file, err := c.FormFile("proof")
		if err != nil || file.Size == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "proof file is required"})
		}

		existing, err := payments.GetPayment(c.Params("id"))
		if err != nil {
			return respondErr(c, err)
		}
		if existing.Status.Terminal() {
			return respondErr(c, services.ErrInvalidTransition)
		}

		ext := filepath.Ext(file.Filename)
		if ext == "" {
			ext = ".jpg"
		}
		key := fmt.Sprintf("payment-proofs/%s%s", uuid.NewString(), ext)
		url, err := utils.UploadFile(file, key)
		if err != nil {
			return respondErr(c, err)
		}

		payment, err := payments.AttachProof(c.Params("id"), url)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(payment)
	})

	api.Post("/payment-transactions/:id/approve", func(c *fiber.Ctx) error {
		payment, err := payments.ApprovePayment(c.Params("id"), adminID(c))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(payment)
	})

	api.Post("/payment-transactions/:id/reject", func(c *fiber.Ctx) error {
		var body struct {
			Reason string `json:"reason"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
		}
		payment, err := payments.RejectPayment(c.Params("id"), body.Reason)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(payment)
	})

	api.Post("/payment-transactions/:id/cancel", func(c *fiber.Ctx) error {
		var body struct {
			Reason string `json:"reason"`
		}
		_ = c.BodyParser(&body)
		payment, err := payments.CancelPayment(c.Params("id"), body.Reason)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(payment)
	})
}
