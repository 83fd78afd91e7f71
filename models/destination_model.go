package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Destination struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	ImageURL         *string   `gorm:"size:255" json:"imageUrl"`
	Flag             *string   `gorm:"size:16" json:"flag"`
	ShortDescription *string   `gorm:"type:text" json:"shortDescription"`
	UniversityCount  int       `json:"universityCount"`
	CostRange        string    `gorm:"size:100" json:"costRange"`
	WorkPermitRules  string    `gorm:"size:255" json:"workPermitRules"`
	Duration         string    `gorm:"size:50" json:"duration"`
	Highlights       []string  `gorm:"serializer:json" json:"highlights"`

	Universities []University `gorm:"foreignkey:DestinationID" json:"universities,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
