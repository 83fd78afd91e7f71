package routes

import (
	"github.com/globalscholars/study_abroad/handlers"
	"github.com/gofiber/fiber/v2"
)

func ConsultationRoutes(app *fiber.App, h *handlers.ConsultationHandler, optionalUser fiber.Handler, protect []fiber.Handler) {
	api := app.Group("/api")

	consultation := api.Group("/consultations")
	consultation.Post("", optionalUser, h.Create)
	consultation.Get("/my", append(protect, h.ListMine)...)
}
