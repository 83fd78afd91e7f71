package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationStatus string

const (
	ConsultationNew       ConsultationStatus = "NEW"
	ConsultationScheduled ConsultationStatus = "SCHEDULED"
	ConsultationCompleted ConsultationStatus = "COMPLETED"
	ConsultationCancelled ConsultationStatus = "CANCELLED"
)

// ConsultationBooking may be submitted anonymously, so UserID is optional.
type ConsultationBooking struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID        *uuid.UUID         `gorm:"type:uuid;index" json:"userId"`
	Name          string             `gorm:"size:255;not null" json:"name"`
	Email         string             `gorm:"size:255;not null" json:"email"`
	Phone         *string            `gorm:"size:50" json:"phone"`
	Message       *string            `gorm:"type:text" json:"message"`
	PreferredDate *time.Time         `json:"preferredDate"`
	Status        ConsultationStatus `gorm:"size:20;not null;default:'NEW'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *ConsultationBooking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
