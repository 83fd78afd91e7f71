package routes

import (
	"github.com/globalscholars/study_abroad/handlers"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App, h *handlers.CourseHandler) {
	api := app.Group("/api")

	course := api.Group("/courses")
	course.Get("", h.List)
	course.Get("/:id", h.Get)
	course.Post("", h.Create)
}
