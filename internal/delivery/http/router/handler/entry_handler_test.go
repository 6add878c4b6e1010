package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"homehub/internal/domain/entity"
	"homehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTelemetryUsecase lets handler tests script the usecase layer.
type stubTelemetryUsecase struct {
	ingest      func(ctx context.Context, userID uuid.UUID, input *usecase.IngestInput) (*usecase.IngestOutput, error)
	listEntries func(ctx context.Context, userID uuid.UUID, deviceTypeFilter string) ([]*entity.Entry, error)
}

func (s *stubTelemetryUsecase) Ingest(ctx context.Context, userID uuid.UUID, input *usecase.IngestInput) (*usecase.IngestOutput, error) {
	return s.ingest(ctx, userID, input)
}

func (s *stubTelemetryUsecase) ListEntries(ctx context.Context, userID uuid.UUID, deviceTypeFilter string) ([]*entity.Entry, error) {
	return s.listEntries(ctx, userID, deviceTypeFilter)
}

func TestEntryHandler_Create_SerializesEntryView(t *testing.T) {
	callerID := uuid.New()
	entry := &entity.Entry{
		ID:         uuid.New(),
		UserID:     callerID,
		DeviceType: entity.DeviceTypeThermostat,
		DeviceData: "21.5",
		CreatedAt:  time.Now(),
	}

	h := &EntryHandler{
		uc: &stubTelemetryUsecase{
			ingest: func(ctx context.Context, userID uuid.UUID, input *usecase.IngestInput) (*usecase.IngestOutput, error) {
				return &usecase.IngestOutput{Entry: entry, Created: true}, nil
			},
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newTestContext(t, http.MethodPost, "/create", `{"device_type":"thermostat","device_data":"21.5"}`)
	c.Set("userID", callerID)

	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"entry_id"`)
	assert.Contains(t, rec.Body.String(), `"device_type":"thermostat"`)
	assert.Contains(t, rec.Body.String(), `"date_created"`)
}

func TestEntryHandler_Create_DuplicateSuppressedReturns200(t *testing.T) {
	callerID := uuid.New()
	entry := &entity.Entry{
		ID:         uuid.New(),
		UserID:     callerID,
		DeviceType: entity.DeviceTypeMotion,
		DeviceData: "detected",
	}

	h := &EntryHandler{
		uc: &stubTelemetryUsecase{
			ingest: func(ctx context.Context, userID uuid.UUID, input *usecase.IngestInput) (*usecase.IngestOutput, error) {
				return &usecase.IngestOutput{Entry: entry, Created: false}, nil
			},
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newTestContext(t, http.MethodPost, "/create", `{"device_type":"motion","device_data":"detected"}`)
	c.Set("userID", callerID)

	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Duplicate entry suppressed")
}

func TestEntryHandler_Create_ValidationFailure(t *testing.T) {
	called := false
	h := &EntryHandler{
		uc: &stubTelemetryUsecase{
			ingest: func(ctx context.Context, userID uuid.UUID, input *usecase.IngestInput) (*usecase.IngestOutput, error) {
				called = true

				return nil, nil
			},
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newTestContext(t, http.MethodPost, "/create", `{"device_type":"thermostat"}`)
	c.Set("userID", uuid.New())

	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.False(t, called)
}

func TestEntryHandler_List_SerializesEntryViews(t *testing.T) {
	callerID := uuid.New()
	entries := []*entity.Entry{
		{ID: uuid.New(), UserID: callerID, DeviceType: entity.DeviceTypeSonar, DeviceData: "3.2", CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: callerID, DeviceType: entity.DeviceTypeLight, DeviceData: "on", CreatedAt: time.Now()},
	}

	h := &EntryHandler{
		uc: &stubTelemetryUsecase{
			listEntries: func(ctx context.Context, userID uuid.UUID, deviceTypeFilter string) ([]*entity.Entry, error) {
				return entries, nil
			},
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newTestContext(t, http.MethodGet, "/entries", "")
	c.Set("userID", callerID)

	err := h.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), entries[0].ID.String())
	assert.Contains(t, rec.Body.String(), `"entry_id"`)
	assert.Contains(t, rec.Body.String(), `"device_data":"on"`)
}
