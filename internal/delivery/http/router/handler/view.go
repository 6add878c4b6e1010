// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"homehub/internal/domain/entity"

	"github.com/google/uuid"
)

// userView is the outward shape of a user. The password hash and the stored
// pairing token never leave through it.
type userView struct {
	ID        uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"date_created"`
}

func newUserView(user *entity.User) *userView {
	return &userView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// entryView is the outward shape of a telemetry entry.
type entryView struct {
	ID         uuid.UUID         `json:"entry_id"`
	UserID     uuid.UUID         `json:"user_id"`
	DeviceType entity.DeviceType `json:"device_type"`
	DeviceData string            `json:"device_data"`
	CreatedAt  time.Time         `json:"date_created"`
}

func newEntryView(entry *entity.Entry) *entryView {
	return &entryView{
		ID:         entry.ID,
		UserID:     entry.UserID,
		DeviceType: entry.DeviceType,
		DeviceData: entry.DeviceData,
		CreatedAt:  entry.CreatedAt,
	}
}

// controllerView is the outward shape of a controller.
type controllerView struct {
	ID        uuid.UUID  `json:"controller_id"`
	SerialNo  string     `json:"controller_sn"`
	UserID    *uuid.UUID `json:"user_id"`
	CreatedAt time.Time  `json:"date_created"`
}

func newControllerView(controller *entity.Controller) *controllerView {
	return &controllerView{
		ID:        controller.ID,
		SerialNo:  controller.SerialNo,
		UserID:    controller.UserID,
		CreatedAt: controller.CreatedAt,
	}
}
