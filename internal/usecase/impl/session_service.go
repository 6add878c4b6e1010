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

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Login verifies credentials, mints a fresh token, and overwrites the user's
// stored copy. There is one active pairing token per user; logging in again
// replaces it.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrIncompleteRequest.WrapMessage("login requires email and password")
	}

	srv.logger.Debug("Starting login", "email", input.Email)

	var loggedInUser *entity.User
	var token string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the account. An unknown email reads the same as a wrong
		// password from the outside.
		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		// 2. Check the password.
		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		// 3. Mint and store the new token.
		minted, err := srv.tokenService.GenerateToken(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate token")
		}

		if err := userRepo.UpdateToken(ctx, user.ID, minted); err != nil {
			return domainerrors.ErrTokenSaveFailed.WrapMessage("could not persist token")
		}

		user.Token = minted
		loggedInUser = user
		token = minted

		return nil
	})

	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}
	srv.logger.Debug("User logged in", "userID", loggedInUser.ID)

	return &usecase.LoginOutput{
		Token: token,
		User:  loggedInUser,
	}, nil
}

// ControllerToken reports the stored token of the controller's bound owner.
// This is the pairing path: a provisioned device presents its serial and
// learns its owner's bearer token out-of-band.
func (srv *sessionService) ControllerToken(ctx context.Context, serial string) (string, error) {
	if serial == "" {
		return "", domainerrors.ErrIncompleteRequest.WrapMessage("validation requires controller_sn")
	}

	var token string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		controllerRepo := repoFactory.ControllerRepo()
		userRepo := repoFactory.UserRepo()

		controller, err := controllerRepo.FindBySerial(ctx, serial)
		if err != nil {
			if errors.Is(err, repository.ErrControllerNotFound) {
				return domainerrors.ErrControllerNotFound.WrapMessage("pairing lookup failed")
			}

			return errors.Wrap(err, "failed to find controller")
		}

		if !controller.Claimed() {
			return domainerrors.ErrControllerUnclaimed.WrapMessage("pairing lookup failed")
		}

		owner, err := userRepo.FindByID(ctx, *controller.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// The claim references a user that no longer exists.
				return domainerrors.ErrDataIntegrityFault.WrapMessage("controller bound to missing user")
			}

			return errors.Wrap(err, "failed to find controller owner")
		}

		token = owner.Token

		return nil
	})

	if err != nil {
		srv.logger.Debug("Pairing lookup failed", "serial", serial, "error", err.Error())

		return "", errors.Wrap(err, "failed to execute pairing lookup")
	}

	return token, nil
}
