// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"homehub/internal/domain/entity"
)

// RegisterInput defines the data required to register a user and claim the
// controller whose serial they signed up with. All four fields are required.
type RegisterInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	ControllerSN string `json:"controller_sn" validate:"required"`
}

// RegisterOutput returns the created user together with the claimed controller.
type RegisterOutput struct {
	User       *entity.User
	Controller *entity.Controller
}

// RegistrationUsecase binds a new account and an unclaimed controller as one
// logical unit: either both mutations land or neither does.
type RegistrationUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
}
