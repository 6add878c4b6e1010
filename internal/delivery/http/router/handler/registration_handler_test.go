package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"homehub/internal/domain/entity"
	"homehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRegistrationUsecase lets handler tests script the usecase layer.
type stubRegistrationUsecase struct {
	register func(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error)
}

func (s *stubRegistrationUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.register(ctx, input)
}

func TestRegistrationHandler_Signup_Success(t *testing.T) {
	userID := uuid.New()
	controllerID := uuid.New()

	h := &RegistrationHandler{
		uc: &stubRegistrationUsecase{
			register: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
				return &usecase.RegisterOutput{
					User:       &entity.User{ID: userID, Name: input.Name, Email: input.Email, PasswordHash: "hashed"},
					Controller: &entity.Controller{ID: controllerID, SerialNo: input.ControllerSN, UserID: &userID},
				}, nil
			},
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	body := `{"name":"Test User","email":"test@example.com","password":"password123","controller_sn":"0001"}`
	c, rec := newTestContext(t, http.MethodPost, "/signup", body)

	err := h.Signup(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "0001")
	// The password hash never leaves through the response.
	assert.NotContains(t, rec.Body.String(), "hashed")
}

func TestRegistrationHandler_Signup_ValidationFailure(t *testing.T) {
	called := false
	h := &RegistrationHandler{
		uc: &stubRegistrationUsecase{
			register: func(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
				called = true

				return nil, nil
			},
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	// Missing email: rejected by the request validator before the usecase runs.
	body := `{"name":"Test User","password":"password123","controller_sn":"0001"}`
	c, rec := newTestContext(t, http.MethodPost, "/signup", body)

	err := h.Signup(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.False(t, called)
}
