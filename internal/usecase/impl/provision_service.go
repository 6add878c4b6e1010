package impl

import (
	"context"
	"log/slog"

	"homehub/config"
	"homehub/internal/domain/entity"
	"homehub/internal/domain/repository"
	"homehub/internal/usecase"

	"github.com/pkg/errors"
)

// provisionService implements the ProvisionUsecase interface.
type provisionService struct {
	controllerRepo repository.ControllerRepository
	serials        []string
	logger         *slog.Logger
}

// NewProvisionService is the constructor for provisionService.
func NewProvisionService(
	controllerRepo repository.ControllerRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProvisionUsecase {
	var serials []string
	if cfg.Provision != nil {
		serials = cfg.Provision.ControllerSerials
	}

	return &provisionService{
		controllerRepo: controllerRepo,
		serials:        serials,
		logger:         logger,
	}
}

// ProvisionControllers seeds the configured serials. Serials already present
// are skipped so repeated calls are harmless; each creation commits on its
// own since provisioned units are independent of each other.
func (srv *provisionService) ProvisionControllers(ctx context.Context) ([]*entity.Controller, error) {
	created := make([]*entity.Controller, 0, len(srv.serials))

	for _, serial := range srv.serials {
		controller := &entity.Controller{SerialNo: serial}

		if err := srv.controllerRepo.Create(ctx, controller); err != nil {
			if errors.Is(err, repository.ErrDuplicateSerial) {
				srv.logger.Debug("Controller already provisioned", "serial", serial)

				continue
			}

			srv.logger.Error("Failed to provision controller", "serial", serial, "error", err.Error())

			return nil, errors.Wrapf(err, "failed to provision controller %s", serial)
		}

		srv.logger.Info("Controller provisioned", "serial", serial, "controllerID", controller.ID)
		created = append(created, controller)
	}

	return created, nil
}
