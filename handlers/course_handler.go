package handlers

import (
	"strings"

	"github.com/globalscholars/study_abroad/models"
	"github.com/globalscholars/study_abroad/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CourseHandler struct {
	db *gorm.DB
}

func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{db: db}
}

type CreateCourseRequest struct {
	Title          string  `json:"title" validate:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price" validate:"required,gte=0"`
	Category       string  `json:"category" validate:"required,oneof=Language 'Test Prep' Academic Counseling Other"`
	InstructorName string  `json:"instructorName"`
	ThumbnailURL   *string `json:"thumbnailUrl"`
}

func (h *CourseHandler) List(c *fiber.Ctx) error {
	query := h.db.Model(&models.Course{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var courses []models.Course
	if err := query.Order("created_at desc").Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "", fiber.Map{"courses": courses})
}

func (h *CourseHandler) Get(c *fiber.Ctx) error {
	var course models.Course
	if err := h.db.First(&course, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "", fiber.Map{"course": course})
}

func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	course := models.Course{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ThumbnailURL: req.ThumbnailURL,
		IsActive:     true,
	}
	if req.InstructorName != "" {
		course.InstructorName = req.InstructorName
	} else {
		course.InstructorName = "Instructor"
	}

	if err := h.db.Create(&course).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create course")
	}

	return utils.JsonResponse(c, fiber.StatusCreated, "Course created", fiber.Map{"course": course})
}
