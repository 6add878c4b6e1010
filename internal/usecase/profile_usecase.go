package usecase

import (
	"context"

	"homehub/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateEmailInput carries the replacement email for a user.
type UpdateEmailInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ProfileUsecase exposes account lookup and the explicit update-email flow.
type ProfileUsecase interface {
	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateEmail verifies the new email is unused, replaces the stored one,
	// and returns the updated user.
	UpdateEmail(ctx context.Context, userID uuid.UUID, input *UpdateEmailInput) (*entity.User, error)
}
