// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"homehub/internal/domain/entity"
	domainerrors "homehub/internal/domain/errors"
	"homehub/internal/domain/repository"
	"homehub/internal/domain/service"
	"homehub/internal/usecase"

	"github.com/pkg/errors"
)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.RegistrationUsecase {
	return &registrationService{
		txManager: txManager,
		hasher:    hasher,
		logger:    logger,
	}
}

// Register orchestrates the signup flow: validate the request, verify the
// email is free, verify the controller exists and is unclaimed, create the
// user, and bind the controller to them. User creation and the claim run in
// one transaction, so a failed claim rolls the new user back instead of
// leaving an account with no bound controller.
func (srv *registrationService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Name == "" || input.Email == "" || input.Password == "" || input.ControllerSN == "" {
		return nil, domainerrors.ErrIncompleteRequest.WrapMessage("signup requires name, email, password and controller_sn")
	}

	srv.logger.Info("Starting registration", "email", input.Email, "controllerSN", input.ControllerSN)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	var claimedController *entity.Controller

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		controllerRepo := repoFactory.ControllerRepo()

		// 1. The email must not belong to an existing account.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("registration failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		// 2. The controller must exist and still be unclaimed.
		controller, err := controllerRepo.FindBySerial(ctx, input.ControllerSN)
		if err != nil {
			if errors.Is(err, repository.ErrControllerNotFound) {
				return domainerrors.ErrControllerNotFound.WrapMessage("registration failed")
			}

			return errors.Wrap(err, "failed to find controller")
		}
		if controller.Claimed() {
			return domainerrors.ErrControllerClaimed.WrapMessage("registration failed")
		}

		// 3. Create the account.
		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		// 4. Claim the controller for the new account. A failure here rolls
		// the whole transaction back; the caller sees registration-incomplete,
		// never a success with a dangling user.
		if err := controllerRepo.AssignOwner(ctx, controller.ID, newUser.ID); err != nil {
			if errors.Is(err, repository.ErrOwnerConflict) {
				// A concurrent signup claimed the serial between the check and the bind.
				return domainerrors.ErrControllerClaimed.WrapMessage("controller claimed concurrently")
			}

			return domainerrors.ErrRegistrationIncomplete.WrapMessage("controller claim failed after user creation")
		}

		ownerID := newUser.ID
		controller.UserID = &ownerID
		registeredUser = newUser
		claimedController = controller

		return nil
	})

	if err != nil {
		srv.logger.Warn("Registration failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}
	srv.logger.Debug("User registered", "userID", registeredUser.ID, "controllerID", claimedController.ID)

	return &usecase.RegisterOutput{
		User:       registeredUser,
		Controller: claimedController,
	}, nil
}
