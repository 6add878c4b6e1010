package usecase

import (
	"context"

	"homehub/internal/domain/entity"

	"github.com/google/uuid"
)

// IngestInput carries one telemetry reading. The reporting user comes from the
// verified token, never from the request body.
type IngestInput struct {
	DeviceType string `json:"device_type" validate:"required"`
	DeviceData string `json:"device_data" validate:"required"`
}

// IngestOutput distinguishes a stored entry from a suppressed duplicate.
type IngestOutput struct {
	Entry *entity.Entry
	// Created is false when the submission matched the latest entry for the
	// (user, device type) pair and was suppressed instead of inserted.
	Created bool
}

// TelemetryUsecase records device readings with idempotent append semantics
// and serves them back per user.
type TelemetryUsecase interface {
	Ingest(ctx context.Context, userID uuid.UUID, input *IngestInput) (*IngestOutput, error)

	// ListEntries returns the user's entries in creation order, optionally
	// filtered to one device type (empty filter means all).
	ListEntries(ctx context.Context, userID uuid.UUID, deviceTypeFilter string) ([]*entity.Entry, error)
}
