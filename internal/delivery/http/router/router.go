// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/charmeleon/HomeCinema/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MembershipHandler *handler.MembershipHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	membershipHandler *handler.MembershipHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		membershipHandler: params.MembershipHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.membershipHandler.CreateUser)
		authGroup.POST("/login", r.membershipHandler.Login)
	}

	// User routes
	userGroup := e.Group("/users")
	{
		userGroup.GET("/:id", r.membershipHandler.GetUser)
	}

	// Role lookup is keyed by username, so it lives under its own prefix.
	e.GET("/roles/:username", r.membershipHandler.GetUserRoles)
}
