package jobs

import (
	"log"
	"time"

	"github.com/globalscholars/study_abroad/models"
	"gorm.io/gorm"
)

// CompleteElapsedConsultations closes out SCHEDULED consultations whose
// preferred date passed more than a day ago.
func CompleteElapsedConsultations(db *gorm.DB) func() {
	return func() {
		log.Println("Running job: CompleteElapsedConsultations...")

		cutoff := time.Now().Add(-24 * time.Hour)

		result := db.Model(&models.ConsultationBooking{}).
			Where("status = ? AND preferred_date IS NOT NULL AND preferred_date < ?",
				models.ConsultationScheduled, cutoff).
			Update("status", models.ConsultationCompleted)
		if result.Error != nil {
			log.Printf("Error completing elapsed consultations: %v", result.Error)
			return
		}

		if result.RowsAffected > 0 {
			log.Printf("Marked %d consultation(s) as completed.", result.RowsAffected)
		}
	}
}
