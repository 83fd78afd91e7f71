package handlers

import (
	"time"

	"github.com/globalscholars/study_abroad/middleware"
	"github.com/globalscholars/study_abroad/models"
	"github.com/globalscholars/study_abroad/notifications"
	"github.com/globalscholars/study_abroad/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ConsultationHandler struct {
	db     *gorm.DB
	mailer *notifications.EmailService
}

func NewConsultationHandler(db *gorm.DB, mailer *notifications.EmailService) *ConsultationHandler {
	return &ConsultationHandler{db: db, mailer: mailer}
}

type CreateConsultationRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         *string `json:"phone"`
	Message       *string `json:"message"`
	PreferredDate *string `json:"preferredDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (h *ConsultationHandler) Create(c *fiber.Ctx) error {
	var req CreateConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	booking := models.ConsultationBooking{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Status:  models.ConsultationNew,
	}
	if req.PreferredDate != nil {
		preferred, _ := time.Parse(time.RFC3339, *req.PreferredDate)
		booking.PreferredDate = &preferred
	}
	if user := middleware.CurrentUser(c); user != nil {
		booking.UserID = &user.ID
	}

	if err := h.db.Create(&booking).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit consultation request")
	}

	go h.mailer.Send(booking.Name, booking.Email, "We received your consultation request",
		notifications.ConsultationReceivedBody(booking.Name))

	return utils.JsonResponse(c, fiber.StatusCreated, "Consultation request submitted", fiber.Map{
		"consultation": booking,
	})
}

func (h *ConsultationHandler) ListMine(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var consultations []models.ConsultationBooking
	if err := h.db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&consultations).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch consultations")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "", fiber.Map{"consultations": consultations})
}
