package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID                string   `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string   `gorm:"size:200;not null" json:"name"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price"`
	Category          *string  `gorm:"size:100" json:"category"`
	ImageURL          *string  `gorm:"size:500" json:"image_url"`
	SecondaryImageURL *string  `gorm:"size:500" json:"secondary_image_url"`
	// Comma- or newline-delimited feature list, rendered as bullet points.
	Points       *string   `json:"points"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	Featured     bool      `gorm:"not null;default:false" json:"featured"`
	ShowInSlider bool      `gorm:"not null;default:true" json:"show_in_slider"`
	SliderOrder  int       `gorm:"not null;default:0" json:"slider_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
