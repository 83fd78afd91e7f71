package routes

import (
	"github.com/globalscholars/study_abroad/handlers"
	"github.com/gofiber/fiber/v2"
)

func DestinationRoutes(app *fiber.App, h *handlers.DestinationHandler) {
	api := app.Group("/api")

	destination := api.Group("/destinations")
	destination.Get("", h.List)
	destination.Get("/:id", h.Get)
}
