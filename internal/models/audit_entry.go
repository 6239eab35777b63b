package models

import "time"

type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

// AuditEntry is an append-only record of admin mutations. Deletes are
// permanent at the data layer, so the log is the only trace left behind.
type AuditEntry struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     uint        `gorm:"not null;index" json:"user_id"`
	UserEmail  string      `gorm:"size:100;not null" json:"user_email"`
	EntityType string      `gorm:"size:50;not null;index" json:"entity_type"`
	EntityID   string      `gorm:"size:64;not null" json:"entity_id"`
	Action     AuditAction `gorm:"size:20;not null" json:"action"`
	Detail     string      `gorm:"type:text" json:"detail"`
	CreatedAt  time.Time   `json:"created_at"`
}
