package routes

import (
	"github.com/globalscholars/study_abroad/handlers"
	"github.com/gofiber/fiber/v2"
)

func DashboardRoutes(app *fiber.App, h *handlers.DashboardHandler, protect []fiber.Handler) {
	api := app.Group("/api")

	dashboard := api.Group("/dashboard", protect...)
	dashboard.Get("/overview", h.Overview)
}
