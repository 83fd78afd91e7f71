package handlers

import (
	"time"

	"github.com/globalscholars/study_abroad/middleware"
	"github.com/globalscholars/study_abroad/models"
	"github.com/globalscholars/study_abroad/utils"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type DashboardStats struct {
	TotalEnrollments      int64 `json:"totalEnrollments"`
	ActiveEnrollments     int64 `json:"activeEnrollments"`
	TotalApplications     int64 `json:"totalApplications"`
	PendingApplications   int64 `json:"pendingApplications"`
	UpcomingConsultations int64 `json:"upcomingConsultations"`
}

// Overview fans out the dashboard sub-queries concurrently and merges the
// results. The first failing query fails the whole aggregate.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	now := time.Now()

	var (
		stats              DashboardStats
		recentEnrollments  []models.Enrollment
		recentApplications []models.Application
	)

	g, ctx := errgroup.WithContext(c.Context())

	g.Go(func() error {
		return h.db.WithContext(ctx).Model(&models.Enrollment{}).
			Where("user_id = ?", user.ID).
			Count(&stats.TotalEnrollments).Error
	})
	g.Go(func() error {
		return h.db.WithContext(ctx).Model(&models.Enrollment{}).
			Where("user_id = ? AND status IN ?", user.ID,
				[]models.EnrollmentStatus{models.EnrollmentActive, models.EnrollmentCompleted}).
			Count(&stats.ActiveEnrollments).Error
	})
	g.Go(func() error {
		return h.db.WithContext(ctx).Model(&models.Application{}).
			Where("user_id = ?", user.ID).
			Count(&stats.TotalApplications).Error
	})
	g.Go(func() error {
		return h.db.WithContext(ctx).Model(&models.Application{}).
			Where("user_id = ? AND status IN ?", user.ID,
				[]models.ApplicationStatus{models.ApplicationPending, models.ApplicationUnderReview}).
			Count(&stats.PendingApplications).Error
	})
	g.Go(func() error {
		return h.db.WithContext(ctx).Model(&models.ConsultationBooking{}).
			Where("user_id = ? AND (preferred_date > ? OR status = ?)",
				user.ID, now, models.ConsultationScheduled).
			Count(&stats.UpcomingConsultations).Error
	})
	g.Go(func() error {
		return h.db.WithContext(ctx).Preload("Course").
			Where("user_id = ?", user.ID).
			Order("created_at desc").Limit(3).
			Find(&recentEnrollments).Error
	})
	g.Go(func() error {
		return h.db.WithContext(ctx).Preload("University.Destination").
			Where("user_id = ?", user.ID).
			Order("created_at desc").Limit(3).
			Find(&recentApplications).Error
	})

	if err := g.Wait(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	return utils.JsonResponse(c, fiber.StatusOK, "", fiber.Map{
		"stats":              stats,
		"recentEnrollments":  recentEnrollments,
		"recentApplications": recentApplications,
	})
}
