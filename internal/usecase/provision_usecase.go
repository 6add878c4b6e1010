package usecase

import (
	"context"

	"homehub/internal/domain/entity"
)

// ProvisionUsecase seeds the configured controller serials before any user
// exists. Provisioning is re-runnable: serials already present are skipped.
type ProvisionUsecase interface {
	ProvisionControllers(ctx context.Context) ([]*entity.Controller, error)
}
