package handler

import (
	"log/slog"
	"net/http"

	"homehub/internal/delivery/http/response"
	"homehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EntryHandler holds dependencies for telemetry handlers.
type EntryHandler struct {
	uc     usecase.TelemetryUsecase
	logger *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler, injected by Fx.
func NewEntryHandler(uc usecase.TelemetryUsecase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the caller's entries, optionally narrowed to the device type
// named in the path.
func (h *EntryHandler) List(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entries, err := h.uc.ListEntries(c.Request().Context(), userID, c.Param("device_type"))
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*entryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, newEntryView(entry))
	}

	return response.Success(c, http.StatusOK, views, "Entries retrieved successfully")
}

// Create ingests one telemetry reading. A submission whose payload matches the
// latest entry for the same device type is acknowledged without inserting.
func (h *EntryHandler) Create(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.IngestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Ingest(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Created {
		return response.Success(c, http.StatusOK, newEntryView(output.Entry), "Duplicate entry suppressed")
	}

	return response.Success(c, http.StatusCreated, newEntryView(output.Entry), "Entry created successfully")
}
