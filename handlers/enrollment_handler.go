package handlers

import (
	"errors"

	"github.com/globalscholars/study_abroad/middleware"
	"github.com/globalscholars/study_abroad/models"
	"github.com/globalscholars/study_abroad/notifications"
	"github.com/globalscholars/study_abroad/payments"
	"github.com/globalscholars/study_abroad/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EnrollmentHandler struct {
	db      *gorm.DB
	gateway payments.Gateway
	mailer  *notifications.EmailService
}

func NewEnrollmentHandler(db *gorm.DB, gateway payments.Gateway, mailer *notifications.EmailService) *EnrollmentHandler {
	return &EnrollmentHandler{db: db, gateway: gateway, mailer: mailer}
}

type CreateEnrollmentRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
}

type ConfirmPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
}

func (h *EnrollmentHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID is required")
	}

	var enrollment models.Enrollment
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", req.CourseID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}

		// Existence check and insert share the transaction so two
		// simultaneous enrolls for the same pair cannot both commit
		// through it unobserved.
		var existing models.Enrollment
		err := tx.Where("user_id = ? AND course_id = ? AND status IN ?",
			user.ID, course.ID,
			[]models.EnrollmentStatus{models.EnrollmentActive, models.EnrollmentCompleted}).
			First(&existing).Error
		if err == nil {
			return fiber.NewError(fiber.StatusConflict, "You are already enrolled in this course")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		enrollment = models.Enrollment{
			UserID:        user.ID,
			CourseID:      course.ID,
			Status:        models.EnrollmentPending,
			PaymentStatus: models.PaymentPending,
		}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return fiberErr
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create enrollment")
	}

	return utils.JsonResponse(c, fiber.StatusCreated,
		"Enrollment initiated. Please complete payment for demo.",
		fiber.Map{"enrollment": enrollment})
}

func (h *EnrollmentHandler) ConfirmPayment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	// The payment body is optional for the demo flow.
	var req ConfirmPaymentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
		}
	}

	var enrollment models.Enrollment
	if err := h.db.Preload("Course").First(&enrollment, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
	}
	if enrollment.UserID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "You are not allowed to modify this enrollment")
	}
	if enrollment.Status.Settled() {
		return fiber.NewError(fiber.StatusConflict, "Payment already confirmed for this enrollment")
	}

	amount := 0.0
	courseTitle := ""
	if enrollment.Course != nil {
		amount = enrollment.Course.Price
		courseTitle = enrollment.Course.Title
	}

	reference, err := h.gateway.Charge(c.Context(), amount, req.PaymentMethod, req.TransactionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Payment could not be processed")
	}

	if err := enrollment.ConfirmPayment(req.PaymentMethod, reference); err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	if err := h.db.Save(&enrollment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update enrollment")
	}

	go h.mailer.Send(user.Name, user.Email, "Payment Confirmed",
		notifications.PaymentConfirmedBody(courseTitle, reference))

	return utils.JsonResponse(c, fiber.StatusOK,
		"Payment confirmed for demo. Enrollment is now active.",
		fiber.Map{"enrollment": enrollment})
}

func (h *EnrollmentHandler) ListMine(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var enrollments []models.Enrollment
	if err := h.db.Preload("Course").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "", fiber.Map{"enrollments": enrollments})
}

func (h *EnrollmentHandler) Cancel(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var enrollment models.Enrollment
	if err := h.db.First(&enrollment, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
	}
	if enrollment.UserID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "You are not allowed to modify this enrollment")
	}

	if err := enrollment.Cancel(); err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	if err := h.db.Save(&enrollment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to cancel enrollment")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "Enrollment cancelled", fiber.Map{"enrollment": enrollment})
}
