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
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewProfileService(txManager, newDiscardLogger())

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestProfileService_GetUser_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.User{ID: userID, Name: "Test User", Email: "test@example.com"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(expected, nil)
	})

	user, err := fx.service.GetUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestProfileService_GetUser_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	user, err := fx.service.GetUser(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateEmail_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateEmailInput{Email: "new@example.com"}
	existing := &entity.User{ID: userID, Name: "Test User", Email: "old@example.com"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().UpdateEmail(ctx, userID, input.Email).Return(nil)
	})

	updated, err := fx.service.UpdateEmail(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestProfileService_UpdateEmail_SameOwnerNoConflict(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateEmailInput{Email: "mine@example.com"}
	existing := &entity.User{ID: userID, Email: "mine@example.com"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		// The address already belongs to the caller: not a conflict.
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)
		mockUserRepo.EXPECT().UpdateEmail(ctx, userID, input.Email).Return(nil)
	})

	updated, err := fx.service.UpdateEmail(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "mine@example.com", updated.Email)
}

func TestProfileService_UpdateEmail_Taken(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateEmailInput{Email: "taken@example.com"}
	existing := &entity.User{ID: userID, Email: "old@example.com"}
	other := &entity.User{ID: uuid.New(), Email: input.Email}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(other, nil)
	})

	updated, err := fx.service.UpdateEmail(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestProfileService_UpdateEmail_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateEmailInput{Email: "new@example.com"}

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	updated, err := fx.service.UpdateEmail(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateEmail_MissingEmail(t *testing.T) {
	fx := createTestProfileService(t)

	updated, err := fx.service.UpdateEmail(context.Background(), uuid.New(), &usecase.UpdateEmailInput{})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrIncompleteRequest))
}
