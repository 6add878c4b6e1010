package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(250);not null"`
	Email        string    `gorm:"type:varchar(120);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Token        *string   `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Controller *ControllerModel `gorm:"foreignKey:UserID"`
	Entries    []EntryModel     `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
