package handlers

import (
	"github.com/globalscholars/study_abroad/models"
	"github.com/globalscholars/study_abroad/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DestinationHandler struct {
	db *gorm.DB
}

func NewDestinationHandler(db *gorm.DB) *DestinationHandler {
	return &DestinationHandler{db: db}
}

func (h *DestinationHandler) List(c *fiber.Ctx) error {
	var destinations []models.Destination
	if err := h.db.Preload("Universities").Order("created_at desc").Find(&destinations).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch destinations")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "", fiber.Map{"destinations": destinations})
}

func (h *DestinationHandler) Get(c *fiber.Ctx) error {
	var destination models.Destination
	if err := h.db.Preload("Universities").First(&destination, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Destination not found")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "", fiber.Map{"destination": destination})
}
