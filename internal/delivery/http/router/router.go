// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ProfileHandler     *handler.ProfileHandler
	ItemHandler        *handler.ItemHandler
	WalletHandler      *handler.WalletHandler
	TransactionHandler *handler.TransactionHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	itemHandler        *handler.ItemHandler
	walletHandler      *handler.WalletHandler
	transactionHandler *handler.TransactionHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		profileHandler:     params.ProfileHandler,
		itemHandler:        params.ItemHandler,
		walletHandler:      params.WalletHandler,
		transactionHandler: params.TransactionHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public catalogue reads
	e.GET("/items", r.itemHandler.ListItems)
	e.GET("/items/:id", r.itemHandler.GetItem)

	// Listing mutations require authentication
	itemGroup := e.Group("/items")
	itemGroup.Use(r.authMiddleware.Authenticate)
	{
		itemGroup.POST("", r.itemHandler.CreateItem)
		itemGroup.PATCH("/:id", r.itemHandler.UpdateItem)
		itemGroup.DELETE("/:id", r.itemHandler.DeleteItem)
	}

	// Profile routes for the logged-in user
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
	}

	// Wallet routes for the logged-in user
	walletGroup := e.Group("/wallet")
	walletGroup.Use(r.authMiddleware.Authenticate)
	{
		walletGroup.GET("", r.walletHandler.GetWallet)
		walletGroup.POST("/deposit", r.walletHandler.Deposit)
	}

	// Transaction routes for the logged-in user
	txGroup := e.Group("/transactions")
	txGroup.Use(r.authMiddleware.Authenticate)
	{
		txGroup.GET("", r.transactionHandler.ListMine)
		txGroup.POST("", r.transactionHandler.Create)
		txGroup.GET("/:id", r.transactionHandler.Get)
		txGroup.POST("/:id/checkout", r.transactionHandler.Checkout)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.DELETE("/items/:id", r.itemHandler.DeleteItem)
		adminGroup.GET("/users", r.profileHandler.ListUsers)
	}
}
