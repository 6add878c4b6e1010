// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homehub/internal/delivery/http/middleware"
	"homehub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	SessionHandler      *handler.SessionHandler
	UserHandler         *handler.UserHandler
	EntryHandler        *handler.EntryHandler
	ProvisionHandler    *handler.ProvisionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	sessionHandler      *handler.SessionHandler
	userHandler         *handler.UserHandler
	entryHandler        *handler.EntryHandler
	provisionHandler    *handler.ProvisionHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		sessionHandler:      params.SessionHandler,
		userHandler:         params.UserHandler,
		entryHandler:        params.EntryHandler,
		provisionHandler:    params.ProvisionHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes: provisioning, signup, login, and the pairing lookup
	// controllers use before they hold a token.
	e.POST("/populate", r.provisionHandler.Populate)
	e.POST("/signup", r.registrationHandler.Signup)
	e.POST("/login", r.sessionHandler.Login)
	e.POST("/validate", r.sessionHandler.Validate)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.GetCurrent)
		userGroup.GET("/:id", r.userHandler.GetByID)
		userGroup.PUT("/:id", r.userHandler.UpdateEmail)
		// Registered so the rejection is deliberate rather than a routing 404.
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}

	// Telemetry routes that require authentication
	entriesGroup := e.Group("/entries")
	entriesGroup.Use(r.authMiddleware.Authenticate)
	{
		entriesGroup.GET("", r.entryHandler.List)
		entriesGroup.GET("/:device_type", r.entryHandler.List)
	}

	createGroup := e.Group("/create")
	createGroup.Use(r.authMiddleware.Authenticate)
	{
		createGroup.POST("", r.entryHandler.Create)
	}
}
