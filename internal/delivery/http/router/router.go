// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http/middleware"
	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReviewHandler    *handler.ReviewHandler
	BroadcastHandler *handler.BroadcastHandler
	TicketHandler    *handler.TicketHandler
	AccountHandler   *handler.AccountHandler
	AssetHandler     *handler.AssetHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	reviewHandler    *handler.ReviewHandler
	broadcastHandler *handler.BroadcastHandler
	ticketHandler    *handler.TicketHandler
	accountHandler   *handler.AccountHandler
	assetHandler     *handler.AssetHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		reviewHandler:    params.ReviewHandler,
		broadcastHandler: params.BroadcastHandler,
		ticketHandler:    params.TicketHandler,
		accountHandler:   params.AccountHandler,
		assetHandler:     params.AssetHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything under /admin requires a verified ID token with the admin claim.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireAdmin)

	adminGroup.GET("/reviews", r.reviewHandler.Queues)

	reviewGroup := adminGroup.Group("/reviews/:queue")
	{
		reviewGroup.GET("/pending", r.reviewHandler.ListPending)
		reviewGroup.GET("/pending/stream", r.reviewHandler.StreamPending)
		reviewGroup.GET("/:id", r.reviewHandler.Get)
		reviewGroup.POST("/:id/approve", r.reviewHandler.Approve)
		reviewGroup.POST("/:id/reject", r.reviewHandler.Reject)
	}

	adminGroup.POST("/broadcasts", r.broadcastHandler.Send)

	ticketGroup := adminGroup.Group("/tickets")
	{
		ticketGroup.GET("", r.ticketHandler.ListOpen)
		ticketGroup.POST("/:id/answer", r.ticketHandler.Answer)
		ticketGroup.POST("/:id/close", r.ticketHandler.Close)
	}

	adminGroup.POST("/banners/assets", r.assetHandler.UploadBanner)
	adminGroup.GET("/listings/:collection/:id/qrcode", r.assetHandler.ListingQRCode)

	userGroup := adminGroup.Group("/users")
	{
		userGroup.DELETE("/:id", r.accountHandler.Delete)
		userGroup.POST("/:id/welcome-email", r.accountHandler.SendWelcomeEmail)
	}
}
