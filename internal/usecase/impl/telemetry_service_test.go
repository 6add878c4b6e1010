package impl

import (
	"context"
	"testing"

	"homehub/internal/domain/entity"
	domainerrors "homehub/internal/domain/errors"
	"homehub/internal/domain/repository"
	mockRepo "homehub/internal/mocks/repository"
	"homehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// telemetryServiceFixtures holds all test dependencies for telemetry service tests.
type telemetryServiceFixtures struct {
	service   usecase.TelemetryUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestTelemetryService(t *testing.T) telemetryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewTelemetryService(txManager, newDiscardLogger())

	return telemetryServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestTelemetryService_Ingest_FirstEntry(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()
	input := &usecase.IngestInput{DeviceType: "thermostat", DeviceData: "21.5"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockEntryRepo := mockRepo.NewMockEntryRepository(t)
		factory.EXPECT().EntryRepo().Return(mockEntryRepo)

		mockEntryRepo.EXPECT().FindLatest(ctx, userID, entity.DeviceTypeThermostat).Return(nil, repository.ErrEntryNotFound)
		mockEntryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Entry")).
			Run(func(ctx context.Context, entry *entity.Entry) {
				entry.ID = entryID
			}).
			Return(nil)
	})

	output, err := fx.service.Ingest(ctx, userID, input)

	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, entryID, output.Entry.ID)
	assert.Equal(t, entity.DeviceTypeThermostat, output.Entry.DeviceType)
	assert.Equal(t, "21.5", output.Entry.DeviceData)
}

func TestTelemetryService_Ingest_DuplicateSuppressed(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.IngestInput{DeviceType: "motion", DeviceData: "detected"}
	latest := &entity.Entry{
		ID:         uuid.New(),
		UserID:     userID,
		DeviceType: entity.DeviceTypeMotion,
		DeviceData: "detected",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockEntryRepo := mockRepo.NewMockEntryRepository(t)
		factory.EXPECT().EntryRepo().Return(mockEntryRepo)

		// Same payload as the latest entry: no insert happens.
		mockEntryRepo.EXPECT().FindLatest(ctx, userID, entity.DeviceTypeMotion).Return(latest, nil)
	})

	output, err := fx.service.Ingest(ctx, userID, input)

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, latest, output.Entry)
}

func TestTelemetryService_Ingest_ChangedPayloadInserted(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.IngestInput{DeviceType: "light", DeviceData: "off"}
	latest := &entity.Entry{
		ID:         uuid.New(),
		UserID:     userID,
		DeviceType: entity.DeviceTypeLight,
		DeviceData: "on",
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockEntryRepo := mockRepo.NewMockEntryRepository(t)
		factory.EXPECT().EntryRepo().Return(mockEntryRepo)

		mockEntryRepo.EXPECT().FindLatest(ctx, userID, entity.DeviceTypeLight).Return(latest, nil)
		mockEntryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Entry")).Return(nil)
	})

	output, err := fx.service.Ingest(ctx, userID, input)

	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, "off", output.Entry.DeviceData)
}

func TestTelemetryService_Ingest_UnknownDeviceType(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	input := &usecase.IngestInput{DeviceType: "toaster", DeviceData: "done"}

	output, err := fx.service.Ingest(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnrecognizedDeviceType))
}

func TestTelemetryService_Ingest_IncompleteInput(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()

	for _, input := range []*usecase.IngestInput{
		nil,
		{DeviceType: "sonar"},
		{DeviceData: "42"},
	} {
		output, err := fx.service.Ingest(ctx, uuid.New(), input)

		assert.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrIncompleteRequest))
	}
}

func TestTelemetryService_ListEntries_All(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Entry{
		{ID: uuid.New(), UserID: userID, DeviceType: entity.DeviceTypeSonar, DeviceData: "3.2"},
		{ID: uuid.New(), UserID: userID, DeviceType: entity.DeviceTypeLight, DeviceData: "on"},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockEntryRepo := mockRepo.NewMockEntryRepository(t)
		factory.EXPECT().EntryRepo().Return(mockEntryRepo)
		mockEntryRepo.EXPECT().ListByUser(ctx, userID).Return(expected, nil)
	})

	entries, err := fx.service.ListEntries(ctx, userID, "")

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestTelemetryService_ListEntries_FilteredByType(t *testing.T) {
	fx := createTestTelemetryService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Entry{
		{ID: uuid.New(), UserID: userID, DeviceType: entity.DeviceTypeSonar, DeviceData: "3.2"},
	}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockEntryRepo := mockRepo.NewMockEntryRepository(t)
		factory.EXPECT().EntryRepo().Return(mockEntryRepo)
		mockEntryRepo.EXPECT().ListByUserAndType(ctx, userID, entity.DeviceTypeSonar).Return(expected, nil)
	})

	entries, err := fx.service.ListEntries(ctx, userID, "sonar")

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestTelemetryService_ListEntries_UnknownFilter(t *testing.T) {
	fx := createTestTelemetryService(t)

	entries, err := fx.service.ListEntries(context.Background(), uuid.New(), "doorbell")

	assert.Error(t, err)
	assert.Nil(t, entries)
	assert.True(t, errors.Is(err, domainerrors.ErrUnrecognizedDeviceType))
}
