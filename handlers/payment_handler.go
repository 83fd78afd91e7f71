package handlers

import (
	"strings"
	"time"

	"github.com/globalscholars/study_abroad/middleware"
	"github.com/globalscholars/study_abroad/models"
	"github.com/globalscholars/study_abroad/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentHandler derives payment rows from enrollments; there is no
// separate payments table.
type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

type PaymentRow struct {
	ID               uuid.UUID            `json:"id"`
	Amount           float64              `json:"amount"`
	Status           models.PaymentStatus `json:"status"`
	PaymentReference *string              `json:"paymentReference"`
	Method           string               `json:"method"`
	Course           *PaymentCourse       `json:"course"`
	CreatedAt        time.Time            `json:"createdAt"`
}

type PaymentCourse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
	Price    float64   `json:"price"`
}

func guessMethod(enrollment models.Enrollment) string {
	guess := ""
	if enrollment.PaymentMethod != nil {
		guess = strings.ToLower(*enrollment.PaymentMethod)
	} else if enrollment.PaymentReference != nil {
		guess = strings.ToLower(*enrollment.PaymentReference)
	}

	switch {
	case strings.Contains(guess, "bkash"):
		return "bkash"
	case strings.Contains(guess, "stripe"):
		return "stripe"
	case enrollment.PaymentMethod != nil && *enrollment.PaymentMethod != "":
		return *enrollment.PaymentMethod
	default:
		return "demo"
	}
}

func (h *PaymentHandler) ListMine(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var enrollments []models.Enrollment
	if err := h.db.Preload("Course").
		Where("user_id = ? AND payment_status <> ?", user.ID, models.PaymentNotRequired).
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	payments := make([]PaymentRow, 0, len(enrollments))
	for _, enrollment := range enrollments {
		row := PaymentRow{
			ID:               enrollment.ID,
			Status:           enrollment.PaymentStatus,
			PaymentReference: enrollment.PaymentReference,
			Method:           guessMethod(enrollment),
			CreatedAt:        enrollment.CreatedAt,
		}
		if enrollment.Course != nil {
			row.Amount = enrollment.Course.Price
			row.Course = &PaymentCourse{
				ID:       enrollment.Course.ID,
				Title:    enrollment.Course.Title,
				Category: enrollment.Course.Category,
				Price:    enrollment.Course.Price,
			}
		}
		payments = append(payments, row)
	}

	return utils.JsonResponse(c, fiber.StatusOK, "", fiber.Map{"payments": payments})
}
