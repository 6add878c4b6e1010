package impl

import (
	"context"
	"log/slog"

	"homehub/internal/domain/entity"
	domainerrors "homehub/internal/domain/errors"
	"homehub/internal/domain/repository"
	"homehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// telemetryService implements the TelemetryUsecase interface.
type telemetryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewTelemetryService is the constructor for telemetryService.
func NewTelemetryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.TelemetryUsecase {
	return &telemetryService{
		txManager: txManager,
		logger:    logger,
	}
}

// Ingest records one reading with idempotent append semantics: when the
// payload is byte-equal to the latest entry for the same (user, device type)
// pair, the existing entry is returned unchanged instead of inserting a
// duplicate row. Sensors that re-report an unchanged reading therefore do not
// grow the table. The latest-entry read and the insert share one transaction.
func (srv *telemetryService) Ingest(ctx context.Context, userID uuid.UUID, input *usecase.IngestInput) (*usecase.IngestOutput, error) {
	if input == nil || input.DeviceType == "" || input.DeviceData == "" {
		return nil, domainerrors.ErrIncompleteRequest.WrapMessage("ingestion requires device_type and device_data")
	}

	deviceType, ok := entity.ParseDeviceType(input.DeviceType)
	if !ok {
		return nil, domainerrors.ErrUnrecognizedDeviceType.WrapMessage("unknown device type " + input.DeviceType)
	}

	var output *usecase.IngestOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.EntryRepo()

		latest, err := entryRepo.FindLatest(ctx, userID, deviceType)
		if err != nil && !errors.Is(err, repository.ErrEntryNotFound) {
			return errors.Wrap(err, "failed to find latest entry")
		}

		if latest != nil && latest.DeviceData == input.DeviceData {
			// Duplicate of the most recent reading: suppress.
			output = &usecase.IngestOutput{Entry: latest, Created: false}

			return nil
		}

		entry := &entity.Entry{
			UserID:     userID,
			DeviceType: deviceType,
			DeviceData: input.DeviceData,
		}
		if err := entryRepo.Create(ctx, entry); err != nil {
			return errors.WithStack(err)
		}

		output = &usecase.IngestOutput{Entry: entry, Created: true}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Telemetry ingestion failed", "userID", userID, "deviceType", input.DeviceType, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute ingestion transaction")
	}

	if output.Created {
		srv.logger.Debug("Entry recorded", "userID", userID, "deviceType", deviceType.String(), "entryID", output.Entry.ID)
	} else {
		srv.logger.Debug("Duplicate entry suppressed", "userID", userID, "deviceType", deviceType.String(), "entryID", output.Entry.ID)
	}

	return output, nil
}

// ListEntries returns the user's entries in creation order. An empty filter
// means all device types; a non-empty filter must parse into the enumeration.
func (srv *telemetryService) ListEntries(ctx context.Context, userID uuid.UUID, deviceTypeFilter string) ([]*entity.Entry, error) {
	var deviceType entity.DeviceType
	if deviceTypeFilter != "" {
		parsed, ok := entity.ParseDeviceType(deviceTypeFilter)
		if !ok {
			return nil, domainerrors.ErrUnrecognizedDeviceType.WrapMessage("unknown device type " + deviceTypeFilter)
		}
		deviceType = parsed
	}

	var entries []*entity.Entry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.EntryRepo()

		var listErr error
		if deviceTypeFilter == "" {
			entries, listErr = entryRepo.ListByUser(ctx, userID)
		} else {
			entries, listErr = entryRepo.ListByUserAndType(ctx, userID, deviceType)
		}
		if listErr != nil {
			return errors.Wrap(listErr, "failed to list entries")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute entry listing")
	}

	return entries, nil
}
