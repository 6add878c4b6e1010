package impl

import (
	"context"
	"testing"

	"homehub/config"
	"homehub/internal/domain/entity"
	"homehub/internal/domain/repository"
	mockRepo "homehub/internal/mocks/repository"
	"homehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// provisionServiceFixtures holds all test dependencies for provision service tests.
type provisionServiceFixtures struct {
	service        usecase.ProvisionUsecase
	controllerRepo *mockRepo.MockControllerRepository
}

func createTestProvisionService(t *testing.T, serials []string) provisionServiceFixtures {
	controllerRepo := mockRepo.NewMockControllerRepository(t)
	cfg := &config.Config{
		Provision: &config.ProvisionConfig{ControllerSerials: serials},
	}
	service := NewProvisionService(controllerRepo, cfg, newDiscardLogger())

	return provisionServiceFixtures{
		service:        service,
		controllerRepo: controllerRepo,
	}
}

func TestProvisionService_ProvisionControllers_CreatesAll(t *testing.T) {
	fx := createTestProvisionService(t, []string{"0001", "0002", "0003"})

	ctx := context.Background()

	fx.controllerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Controller")).
		Run(func(ctx context.Context, controller *entity.Controller) {
			controller.ID = uuid.New()
		}).
		Return(nil).
		Times(3)

	created, err := fx.service.ProvisionControllers(ctx)

	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, "0001", created[0].SerialNo)
	assert.Equal(t, "0002", created[1].SerialNo)
	assert.Equal(t, "0003", created[2].SerialNo)
}

func TestProvisionService_ProvisionControllers_SkipsExisting(t *testing.T) {
	fx := createTestProvisionService(t, []string{"0001", "0002"})

	ctx := context.Background()

	fx.controllerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Controller")).
		RunAndReturn(func(ctx context.Context, controller *entity.Controller) error {
			if controller.SerialNo == "0001" {
				return repository.ErrDuplicateSerial
			}
			controller.ID = uuid.New()

			return nil
		}).
		Times(2)

	created, err := fx.service.ProvisionControllers(ctx)

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "0002", created[0].SerialNo)
}

func TestProvisionService_ProvisionControllers_StorageFailure(t *testing.T) {
	fx := createTestProvisionService(t, []string{"0001"})

	ctx := context.Background()

	fx.controllerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Controller")).
		Return(errors.New("db error"))

	created, err := fx.service.ProvisionControllers(ctx)

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "failed to provision controller")
}

func TestProvisionService_ProvisionControllers_NoSerialsConfigured(t *testing.T) {
	fx := createTestProvisionService(t, nil)

	created, err := fx.service.ProvisionControllers(context.Background())

	require.NoError(t, err)
	assert.Empty(t, created)
}
