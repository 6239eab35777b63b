package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project status values are advisory, not database-enforced. The column
// stays an open string so the store mirrors whatever the form submitted.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on-hold"
	ProjectStatusCancelled = "cancelled"
)

type Project struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"size:200;not null" json:"name"`
	Description *string    `json:"description"`
	Status      *string    `gorm:"size:50" json:"status"`
	Budget      *float64   `json:"budget"`
	Client      *string    `gorm:"size:200" json:"client"`
	Category    *string    `gorm:"size:100" json:"category"`
	ImageURL    *string    `gorm:"size:500" json:"image_url"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Active      bool       `gorm:"not null;default:true" json:"active"`
	Featured    bool       `gorm:"not null;default:false" json:"featured"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
