package handlers

import (
	"github.com/globalscholars/study_abroad/models"
	"github.com/globalscholars/study_abroad/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) ListConsultations(c *fiber.Ctx) error {
	var consultations []models.ConsultationBooking
	if err := h.db.Order("created_at desc").Find(&consultations).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch consultations")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "", fiber.Map{"consultations": consultations})
}

func (h *AdminHandler) UpdateConsultationStatus(c *fiber.Ctx) error {
	type request struct {
		Status string `json:"status" validate:"required,oneof=SCHEDULED COMPLETED CANCELLED"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var booking models.ConsultationBooking
	if err := h.db.First(&booking, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Consultation not found")
	}

	booking.Status = models.ConsultationStatus(req.Status)
	if err := h.db.Save(&booking).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update consultation")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "Consultation status updated", fiber.Map{
		"consultation": booking,
	})
}

func (h *AdminHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	type request struct {
		Status string `json:"status" validate:"required,oneof=UNDER_REVIEW APPROVED REJECTED"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var application models.Application
	if err := h.db.First(&application, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Application not found")
	}

	application.Status = models.ApplicationStatus(req.Status)
	if err := h.db.Save(&application).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update application")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "Application status updated", fiber.Map{
		"application": application,
	})
}
