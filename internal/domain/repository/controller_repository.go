// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"homehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for controller persistence.
var (
	// ErrControllerNotFound is returned when no controller matches the lookup.
	ErrControllerNotFound = errors.New("controller not found")
	// ErrDuplicateSerial is returned when provisioning a serial that already exists.
	ErrDuplicateSerial = errors.New("controller serial already exists")
	// ErrOwnerConflict is returned when the claim loses to a concurrent writer
	// on either uniqueness constraint (serial owner or one-controller-per-user).
	ErrOwnerConflict = errors.New("controller owner conflict")
)

// ControllerRepository defines the interface for controller-related database operations.
type ControllerRepository interface {
	// Create provisions a new, unclaimed controller.
	Create(ctx context.Context, controller *entity.Controller) error

	// FindBySerial retrieves a controller by its unique hardware serial.
	FindBySerial(ctx context.Context, serial string) (*entity.Controller, error)

	// FindByOwner retrieves the controller claimed by the given user, if any.
	FindByOwner(ctx context.Context, userID uuid.UUID) (*entity.Controller, error)

	// AssignOwner binds an unclaimed controller to a user. The binding is
	// rejected when the controller is already claimed or the user already
	// owns a controller.
	AssignOwner(ctx context.Context, controllerID uuid.UUID, userID uuid.UUID) error
}
