// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"webmark/internal/delivery/http/middleware"
	"webmark/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	WebsiteHandler *handler.WebsiteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	websiteHandler *handler.WebsiteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		websiteHandler: params.WebsiteHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	userGroup := e.Group("/user")
	{
		userGroup.POST("/signup", r.userHandler.SignUp)
		userGroup.POST("/signin", r.userHandler.SignIn)
	}

	// Website routes require an authenticated caller
	websiteGroup := e.Group("/website")
	websiteGroup.Use(r.authMiddleware.Authenticate)
	{
		websiteGroup.POST("", r.websiteHandler.CreateWebsite)
		websiteGroup.GET("/:website_id", r.websiteHandler.GetWebsite)
	}
}
