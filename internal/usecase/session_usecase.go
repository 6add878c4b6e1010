package usecase

import (
	"context"

	"homehub/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the minted token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// SessionUsecase covers credential checks, token minting, and the
// out-of-band pairing lookup controllers use to learn their owner's token.
type SessionUsecase interface {
	// Login verifies credentials, mints a token, and overwrites the user's
	// stored copy. The previous token is no longer reported to controllers.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ControllerToken reports the stored token of the user bound to the given
	// controller serial. Unknown or unclaimed serials are failures; a token is
	// never invented for an unbound controller.
	ControllerToken(ctx context.Context, serial string) (string, error)
}
