package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "PENDING"
	ApplicationUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationApproved    ApplicationStatus = "APPROVED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
)

type Application struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"userId"`
	UniversityID   uuid.UUID         `gorm:"type:uuid;not null" json:"universityId"`
	Status         ApplicationStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	IntendedIntake *string           `gorm:"size:100" json:"intendedIntake"`
	Notes          *string           `gorm:"type:text" json:"notes"`

	User       *User       `gorm:"foreignkey:UserID" json:"-"`
	University *University `gorm:"foreignkey:UniversityID" json:"university,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
