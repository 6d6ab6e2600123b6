// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"resumebuilder/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler   *handler.AuthHandler
	ResumeHandler *handler.ResumeHandler
	PDFHandler    *handler.PDFHandler
	EmailHandler  *handler.EmailHandler
	AdminHandler  *handler.AdminHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler   *handler.AuthHandler
	resumeHandler *handler.ResumeHandler
	pdfHandler    *handler.PDFHandler
	emailHandler  *handler.EmailHandler
	adminHandler  *handler.AdminHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:   params.AuthHandler,
		resumeHandler: params.ResumeHandler,
		pdfHandler:    params.PDFHandler,
		emailHandler:  params.EmailHandler,
		adminHandler:  params.AdminHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Authentication requirements live in the access policy, not here: the
// route table stays a flat description of the surface.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.GET("/docs", handler.APIDocs)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/oauth/callback", r.authHandler.OAuthCallback)
		authGroup.GET("/me", r.authHandler.Me)
	}

	resumeGroup := api.Group("/resumes")
	{
		resumeGroup.POST("", r.resumeHandler.Create)
		resumeGroup.GET("", r.resumeHandler.GetMine)
		resumeGroup.GET("/:id", r.resumeHandler.GetByID)
		resumeGroup.PUT("/:id", r.resumeHandler.Update)
		resumeGroup.DELETE("/:id", r.resumeHandler.Delete)
		resumeGroup.GET("/:id/share-qr", r.resumeHandler.ShareQR)
	}

	api.GET("/pdf/resume/:id", r.pdfHandler.Export)
	api.POST("/email/send-resume", r.emailHandler.SendResume)

	adminGroup := api.Group("/admin")
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
	}
}
