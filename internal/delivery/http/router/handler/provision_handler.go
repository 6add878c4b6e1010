package handler

import (
	"log/slog"
	"net/http"

	"homehub/internal/delivery/http/response"
	"homehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProvisionHandler holds dependencies for controller provisioning.
type ProvisionHandler struct {
	uc     usecase.ProvisionUsecase
	logger *slog.Logger
}

// NewProvisionHandler is the constructor for ProvisionHandler, injected by Fx.
func NewProvisionHandler(uc usecase.ProvisionUsecase, logger *slog.Logger) *ProvisionHandler {
	return &ProvisionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Populate seeds the configured controller serials. Re-running it is safe;
// serials already present are left untouched.
func (h *ProvisionHandler) Populate(c echo.Context) error {
	created, err := h.uc.ProvisionControllers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*controllerView, 0, len(created))
	for _, controller := range created {
		views = append(views, newControllerView(controller))
	}

	return response.Success(c, http.StatusOK, views, "Controllers provisioned successfully")
}
