package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type University struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Location      string    `gorm:"size:255;not null" json:"location"`
	Ranking       int       `json:"ranking"`
	DestinationID uuid.UUID `gorm:"type:uuid;not null" json:"destinationId"`

	Destination *Destination `gorm:"foreignkey:DestinationID" json:"destination,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *University) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
