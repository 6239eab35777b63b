package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HomepageSection backs the editable marketing blocks on the homepage
// (hero, about, trust badges). SectionType identifies the block; the
// public query returns active sections ordered by OrderPosition.
type HomepageSection struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	SectionType   string    `gorm:"size:100;not null" json:"section_type"`
	Title         *string   `gorm:"size:300" json:"title"`
	Content       *string   `json:"content"`
	ImageURL      *string   `gorm:"size:500" json:"image_url"`
	OrderPosition int       `gorm:"not null;default:0" json:"order_position"`
	Active        bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *HomepageSection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
