package model

import (
	"time"

	"github.com/google/uuid"
)

// EntryModel mirrors the 'entries' table. Rows are append-only; the composite
// index serves both the per-user listing and the latest-entry idempotence read.
type EntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_entries_user_device,priority:1"`
	DeviceType string    `gorm:"type:varchar(40);not null;index:idx_entries_user_device,priority:2"`
	DeviceData string    `gorm:"type:varchar(250);not null"`
	CreatedAt  time.Time `gorm:"index:idx_entries_user_device,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (EntryModel) TableName() string {
	return "entries"
}
