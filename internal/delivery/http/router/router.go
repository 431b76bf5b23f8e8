// Package router contains routing setup for the HTTP delivery.
package router

import (
	"tourdesk/config"
	"tourdesk/internal/delivery/http/middleware"
	"tourdesk/internal/delivery/http/router/handler"
	"tourdesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config *config.Config
	Redis  *redis.Client `optional:"true"`

	AuthHandler        *handler.AuthHandler
	TourHandler        *handler.TourHandler
	CustomerHandler    *handler.CustomerHandler
	ReservationHandler *handler.ReservationHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg   *config.Config
	redis *redis.Client

	authHandler        *handler.AuthHandler
	tourHandler        *handler.TourHandler
	customerHandler    *handler.CustomerHandler
	reservationHandler *handler.ReservationHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                params.Config,
		redis:              params.Redis,
		authHandler:        params.AuthHandler,
		tourHandler:        params.TourHandler,
		customerHandler:    params.CustomerHandler,
		reservationHandler: params.ReservationHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/profile", r.authHandler.GetProfile, r.authMiddleware.Authenticate)
	}

	// Tour catalog. Reads are public and cached, writes are admin-only.
	catalogCache := middleware.NewCatalogCache(r.cfg, r.redis)
	tourGroup := e.Group("/api/tours")
	{
		tourGroup.GET("", r.tourHandler.List, catalogCache)
		tourGroup.GET("/search", r.tourHandler.Search, catalogCache)
		tourGroup.GET("/:id", r.tourHandler.Get, catalogCache)
	}

	tourAdminGroup := e.Group("/api/tours")
	tourAdminGroup.Use(r.authMiddleware.Authenticate)
	tourAdminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		tourAdminGroup.POST("", r.tourHandler.Create)
		tourAdminGroup.PUT("/:id", r.tourHandler.Update)
		tourAdminGroup.DELETE("/:id", r.tourHandler.Delete)
	}

	// Customer management is an admin-only surface.
	customerGroup := e.Group("/api/customers")
	customerGroup.Use(r.authMiddleware.Authenticate)
	customerGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.GET("", r.customerHandler.List)
		customerGroup.GET("/search", r.customerHandler.Search)
		customerGroup.GET("/:id", r.customerHandler.Get)
		customerGroup.PUT("/:id", r.customerHandler.Update)
		customerGroup.DELETE("/:id", r.customerHandler.Delete)
	}

	// Reservations. Any authenticated account can book, read, and cancel
	// its own; lifecycle and fleet-wide operations require the admin role.
	reservationGroup := e.Group("/api/reservations")
	reservationGroup.Use(r.authMiddleware.Authenticate)
	{
		reservationGroup.POST("", r.reservationHandler.Create)
		reservationGroup.GET("/my", r.reservationHandler.ListMine)
		reservationGroup.GET("/:id", r.reservationHandler.Get)
		reservationGroup.PUT("/:id", r.reservationHandler.Update)
		reservationGroup.DELETE("/:id", r.reservationHandler.Delete)
	}

	reservationAdminGroup := e.Group("/api/reservations")
	reservationAdminGroup.Use(r.authMiddleware.Authenticate)
	reservationAdminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		reservationAdminGroup.GET("", r.reservationHandler.List)
		reservationAdminGroup.PATCH("/:id/status", r.reservationHandler.UpdateStatus)
	}
}
