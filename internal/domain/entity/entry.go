package entity

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one immutable telemetry record reported for a user's device.
// Entries are append-only; a submission whose payload equals the latest entry
// for the same (user, device type) pair is suppressed instead of inserted.
type Entry struct {
	ID         uuid.UUID  // The Global Unique Identifier (GUID) for the entry.
	UserID     uuid.UUID  // The user whose controller reported the reading.
	DeviceType DeviceType // Kind of sensor that produced the reading.
	DeviceData string     // Opaque sensor payload, compared byte-for-byte for idempotence.
	CreatedAt  time.Time  // Timestamp of when this entry was recorded.
}
