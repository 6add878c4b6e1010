package handler

import (
	"log/slog"
	"net/http"

	"homehub/internal/delivery/http/response"
	domainerrors "homehub/internal/domain/errors"
	"homehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCurrent returns the profile of the authenticated user.
func (h *UserHandler) GetCurrent(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User retrieved successfully")
}

// GetByID returns the profile of the user named in the path.
func (h *UserHandler) GetByID(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID format")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User retrieved successfully")
}

// UpdateEmail replaces the email of the user named in the path. Only the
// authenticated account may be updated; the path ID must match the token
// identity.
func (h *UserHandler) UpdateEmail(c echo.Context) error {
	callerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID format")
	}
	if userID != callerID {
		return errors.WithStack(domainerrors.ErrForbidden.WrapMessage("cannot update another user's account"))
	}

	var input *usecase.UpdateEmailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.uc.UpdateEmail(c.Request().Context(), callerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User updated successfully")
}

// Delete rejects account deletion. Accounts anchor controllers and telemetry
// and are never removed.
func (h *UserHandler) Delete(c echo.Context) error {
	return errors.WithStack(domainerrors.ErrMethodNotSupported)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
