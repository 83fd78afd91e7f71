package jobs

import (
	"log"

	"github.com/globalscholars/study_abroad/models"
	"gorm.io/gorm"
)

// SyncCourseStudentCounts refreshes each course's student count from its
// ACTIVE/COMPLETED enrollments. The count is display data only; enrollment
// status is never touched here.
func SyncCourseStudentCounts(db *gorm.DB) func() {
	return func() {
		log.Println("Running job: SyncCourseStudentCounts...")

		var courses []models.Course
		if err := db.Find(&courses).Error; err != nil {
			log.Printf("Error loading courses for stats sync: %v", err)
			return
		}

		updated := 0
		for _, course := range courses {
			var count int64
			err := db.Model(&models.Enrollment{}).
				Where("course_id = ? AND status IN ?", course.ID,
					[]models.EnrollmentStatus{models.EnrollmentActive, models.EnrollmentCompleted}).
				Count(&count).Error
			if err != nil {
				log.Printf("Error counting enrollments for course %s: %v", course.ID, err)
				continue
			}
			// Seeded catalog rows carry historical counts; only move the
			// number forward once live enrollments overtake it.
			if count <= course.StudentCount {
				continue
			}
			if err := db.Model(&models.Course{}).Where("id = ?", course.ID).
				Update("student_count", count).Error; err != nil {
				log.Printf("Error updating student count for course %s: %v", course.ID, err)
				continue
			}
			updated++
		}

		if updated > 0 {
			log.Printf("Updated student counts for %d course(s).", updated)
		}
	}
}
