package routes

import (
	"github.com/globalscholars/study_abroad/handlers"
	"github.com/gofiber/fiber/v2"
)

func EnrollmentRoutes(app *fiber.App, h *handlers.EnrollmentHandler, protect []fiber.Handler) {
	api := app.Group("/api")

	enrollment := api.Group("/enrollments", protect...)
	enrollment.Post("", h.Create)
	enrollment.Post("/:id/confirm-payment", h.ConfirmPayment)
	enrollment.Get("/my", h.ListMine)
	enrollment.Delete("/:id", h.Cancel)
}
