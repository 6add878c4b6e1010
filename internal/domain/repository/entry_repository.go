// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"homehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEntryNotFound is returned when no entry matches the lookup.
var ErrEntryNotFound = errors.New("entry not found")

// EntryRepository defines the interface for telemetry entry persistence.
// Entries are append-only; there are no update or delete operations.
type EntryRepository interface {
	// Create persists a new telemetry entry.
	Create(ctx context.Context, entry *entity.Entry) error

	// FindLatest retrieves the most recent entry for a (user, device type)
	// pair, ordered by creation time descending.
	FindLatest(ctx context.Context, userID uuid.UUID, deviceType entity.DeviceType) (*entity.Entry, error)

	// ListByUser retrieves all entries authored by a user in creation order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Entry, error)

	// ListByUserAndType retrieves a user's entries for one device type in creation order.
	ListByUserAndType(ctx context.Context, userID uuid.UUID, deviceType entity.DeviceType) ([]*entity.Entry, error)
}
