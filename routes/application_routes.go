package routes

import (
	"github.com/globalscholars/study_abroad/handlers"
	"github.com/gofiber/fiber/v2"
)

func ApplicationRoutes(app *fiber.App, h *handlers.ApplicationHandler, protect []fiber.Handler) {
	api := app.Group("/api")

	application := api.Group("/applications", protect...)
	application.Post("", h.Create)
	application.Get("/my", h.ListMine)
}
