package entity

import (
	"time"

	"github.com/google/uuid"
)

// Controller is a physical hardware unit identified by its serial number.
// Controllers are provisioned before any user exists and bound to at most one
// user when that user signs up with the serial. A claimed controller is never
// reassigned.
type Controller struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the controller.
	SerialNo  string     // Unique hardware serial, immutable after provisioning.
	UserID    *uuid.UUID // Owning user; nil until the controller is claimed.
	CreatedAt time.Time  // Timestamp of when this controller was provisioned.
	UpdatedAt time.Time  // Timestamp of the last modification (the claim).
}

// Claimed reports whether the controller is already bound to a user.
func (c *Controller) Claimed() bool {
	return c.UserID != nil
}
