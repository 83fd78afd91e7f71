package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	Price          float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Category       string    `gorm:"size:50;not null" json:"category"`
	ThumbnailURL   *string   `gorm:"size:255" json:"thumbnailUrl"`
	InstructorName string    `gorm:"size:255;default:'Expert Instructor'" json:"instructorName"`
	Rating         float64   `gorm:"type:numeric(3,2);default:4.5" json:"rating"`
	Duration       string    `gorm:"size:50;default:'8 weeks'" json:"duration"`
	StudentCount   int64     `gorm:"default:0" json:"studentCount"`
	IsActive       bool      `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
