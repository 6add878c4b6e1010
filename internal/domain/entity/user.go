// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns exactly one claimed controller and the telemetry
// entries that controller reports.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name.
	Email        string    // Unique login identifier, immutable except through the explicit update-email flow.
	PasswordHash string    // bcrypt hash of the user's password. Never serialized outward.
	Token        string    // The currently paired bearer token; overwritten on every login.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
