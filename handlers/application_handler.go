package handlers

import (
	"github.com/globalscholars/study_abroad/middleware"
	"github.com/globalscholars/study_abroad/models"
	"github.com/globalscholars/study_abroad/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationHandler struct {
	db *gorm.DB
}

func NewApplicationHandler(db *gorm.DB) *ApplicationHandler {
	return &ApplicationHandler{db: db}
}

type CreateApplicationRequest struct {
	UniversityID   string  `json:"universityId" validate:"required,uuid"`
	IntendedIntake *string `json:"intendedIntake"`
	Notes          *string `json:"notes"`
}

func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "University ID is required")
	}
	universityID, _ := uuid.Parse(req.UniversityID)

	var university models.University
	if err := h.db.First(&university, "id = ?", universityID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "University not found")
	}

	application := models.Application{
		UserID:         user.ID,
		UniversityID:   university.ID,
		Status:         models.ApplicationPending,
		IntendedIntake: req.IntendedIntake,
		Notes:          req.Notes,
	}
	if err := h.db.Create(&application).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create application")
	}

	return utils.JsonResponse(c, fiber.StatusCreated, "Application submitted", fiber.Map{
		"application": application,
	})
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var applications []models.Application
	if err := h.db.Preload("University.Destination").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&applications).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "", fiber.Map{"applications": applications})
}
