// Package router contains routing setup for the HTTP delivery.
package router

import (
	"vde/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ApplicationHandler *handler.ApplicationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	applicationHandler *handler.ApplicationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		applicationHandler: params.ApplicationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	applicationGroup := e.Group("/applications")
	{
		applicationGroup.POST("", r.applicationHandler.Create)
		applicationGroup.GET("", r.applicationHandler.List)
		applicationGroup.GET("/summary", r.applicationHandler.Summary)
		applicationGroup.PATCH("/:id/status", r.applicationHandler.UpdateStatus)
		applicationGroup.DELETE("/:id", r.applicationHandler.Delete)
	}
}
