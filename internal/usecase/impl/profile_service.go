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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetUser retrieves a user by ID.
func (srv *profileService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.logger.Debug("Getting user", "userID", userID)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		foundUser, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("lookup failed")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// UpdateEmail verifies the replacement email is unused, stores it, and
// returns the updated user.
func (srv *profileService) UpdateEmail(ctx context.Context, userID uuid.UUID, input *usecase.UpdateEmailInput) (*entity.User, error) {
	if input == nil || input.Email == "" {
		return nil, domainerrors.ErrIncompleteRequest.WrapMessage("update requires email")
	}

	srv.logger.Info("Updating user email", "userID", userID)

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. The target user must exist.
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("update failed")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. The new email must not belong to anyone else.
		existing, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil && existing.ID != user.ID {
			return domainerrors.ErrEmailTaken.WrapMessage("update failed")
		}
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		// 3. Replace and commit.
		if err := userRepo.UpdateEmail(ctx, user.ID, input.Email); err != nil {
			return errors.WithStack(err)
		}

		user.Email = input.Email
		updated = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Email update failed", "userID", userID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute email update")
	}

	return updated, nil
}
