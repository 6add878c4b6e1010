package impl

import (
	"context"
	"testing"

	"homehub/internal/domain/entity"
	domainerrors "homehub/internal/domain/errors"
	"homehub/internal/domain/repository"
	mockRepo "homehub/internal/mocks/repository"
	mockService "homehub/internal/mocks/service"
	"homehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// registrationServiceFixtures holds all test dependencies for registration service tests.
type registrationServiceFixtures struct {
	service   usecase.RegistrationUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockService.MockPasswordHasher
}

func createTestRegistrationService(t *testing.T) registrationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	service := NewRegistrationService(txManager, hasher, newDiscardLogger())

	return registrationServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:         "Test User",
		Email:        "test@example.com",
		Password:     "password123",
		ControllerSN: "0001",
	}
}

func TestRegistrationService_Register_Success(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := validRegisterInput()
	userID := uuid.New()
	controllerID := uuid.New()
	controller := &entity.Controller{ID: controllerID, SerialNo: input.ControllerSN}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockControllerRepo := mockRepo.NewMockControllerRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ControllerRepo().Return(mockControllerRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockControllerRepo.EXPECT().FindBySerial(ctx, input.ControllerSN).Return(controller, nil)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = userID
			}).
			Return(nil)
		mockControllerRepo.EXPECT().AssignOwner(ctx, controllerID, userID).Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	require.NotNil(t, output.Controller.UserID)
	assert.Equal(t, userID, *output.Controller.UserID)
}

func TestRegistrationService_Register_IncompleteInput(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()

	inputs := []*usecase.RegisterInput{
		nil,
		{Email: "test@example.com", Password: "pw", ControllerSN: "0001"},
		{Name: "Test User", Password: "pw", ControllerSN: "0001"},
		{Name: "Test User", Email: "test@example.com", ControllerSN: "0001"},
		{Name: "Test User", Email: "test@example.com", Password: "pw"},
	}

	for _, input := range inputs {
		output, err := fx.service.Register(ctx, input)

		assert.Error(t, err)
		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrIncompleteRequest))
	}
}

func TestRegistrationService_Register_EmailTaken(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := validRegisterInput()
	existing := &entity.User{ID: uuid.New(), Email: input.Email}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockControllerRepo := mockRepo.NewMockControllerRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ControllerRepo().Return(mockControllerRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestRegistrationService_Register_UnknownSerial(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockControllerRepo := mockRepo.NewMockControllerRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ControllerRepo().Return(mockControllerRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockControllerRepo.EXPECT().FindBySerial(ctx, input.ControllerSN).Return(nil, repository.ErrControllerNotFound)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrControllerNotFound))
}

func TestRegistrationService_Register_ControllerAlreadyClaimed(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := validRegisterInput()
	ownerID := uuid.New()
	claimed := &entity.Controller{ID: uuid.New(), SerialNo: input.ControllerSN, UserID: &ownerID}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockControllerRepo := mockRepo.NewMockControllerRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ControllerRepo().Return(mockControllerRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockControllerRepo.EXPECT().FindBySerial(ctx, input.ControllerSN).Return(claimed, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrControllerClaimed))
}

func TestRegistrationService_Register_ConcurrentClaim(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := validRegisterInput()
	userID := uuid.New()
	controllerID := uuid.New()
	controller := &entity.Controller{ID: controllerID, SerialNo: input.ControllerSN}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockControllerRepo := mockRepo.NewMockControllerRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ControllerRepo().Return(mockControllerRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockControllerRepo.EXPECT().FindBySerial(ctx, input.ControllerSN).Return(controller, nil)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = userID
			}).
			Return(nil)
		// The serial was claimed by a concurrent signup between check and bind.
		mockControllerRepo.EXPECT().AssignOwner(ctx, controllerID, userID).Return(repository.ErrOwnerConflict)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrControllerClaimed))
}

func TestRegistrationService_Register_ClaimFailureRollsBack(t *testing.T) {
	fx := createTestRegistrationService(t)

	ctx := context.Background()
	input := validRegisterInput()
	userID := uuid.New()
	controllerID := uuid.New()
	controller := &entity.Controller{ID: controllerID, SerialNo: input.ControllerSN}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockControllerRepo := mockRepo.NewMockControllerRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ControllerRepo().Return(mockControllerRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockControllerRepo.EXPECT().FindBySerial(ctx, input.ControllerSN).Return(controller, nil)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = userID
			}).
			Return(nil)
		mockControllerRepo.EXPECT().AssignOwner(ctx, controllerID, userID).Return(errors.New("db error"))
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRegistrationIncomplete))
}
