package routes

import (
	"github.com/globalscholars/study_abroad/handlers"
	"github.com/globalscholars/study_abroad/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, h *handlers.AdminHandler, protect []fiber.Handler) {
	api := app.Group("/api")

	admin := api.Group("/admin", append(protect, middleware.AdminRequired())...)
	admin.Get("/consultations", h.ListConsultations)
	admin.Patch("/consultations/:id/status", h.UpdateConsultationStatus)
	admin.Patch("/applications/:id/status", h.UpdateApplicationStatus)
}
