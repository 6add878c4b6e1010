package model

import (
	"time"

	"github.com/google/uuid"
)

// ControllerModel mirrors the 'controllers' table. The serial is globally
// unique; user_id carries its own unique index so a user can never claim two
// controllers and a losing concurrent claim fails on the constraint instead
// of silently overwriting the winner.
type ControllerModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SerialNo  string     `gorm:"column:controller_sn;type:varchar(20);unique;not null"`
	UserID    *uuid.UUID `gorm:"type:uuid;unique"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ControllerModel) TableName() string {
	return "controllers"
}
