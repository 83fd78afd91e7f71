package routes

import (
	"github.com/globalscholars/study_abroad/handlers"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App, h *handlers.PaymentHandler, protect []fiber.Handler) {
	api := app.Group("/api")

	payment := api.Group("/payments", protect...)
	payment.Get("/my", h.ListMine)
}
