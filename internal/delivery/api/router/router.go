// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hosting/internal/delivery/api/middleware"
	"hosting/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	LedgerHandler  *handler.LedgerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	ledgerHandler  *handler.LedgerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		ledgerHandler:  params.LedgerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Paths are registered without trailing slashes; the server strips them
// before routing.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)
	e.POST("/logout", r.authHandler.Logout)

	// Catalog reads are public, writes need a token.
	productGroup := e.Group("/product")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.POST("", r.productHandler.CreateProduct, r.authMiddleware.Authenticate)
		productGroup.PATCH("/:serviceId", r.productHandler.UpdateProduct, r.authMiddleware.Authenticate)
		productGroup.DELETE("/:serviceId", r.productHandler.DeleteProduct, r.authMiddleware.Authenticate)
	}

	// Ledger routes always act on the account named by the token.
	usersGroup := e.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.POST("/services", r.ledgerHandler.AddService)
		usersGroup.GET("/services", r.ledgerHandler.ListServices)
		usersGroup.DELETE("/services/:itemId", r.ledgerHandler.RemoveService)

		usersGroup.POST("/cart", r.ledgerHandler.AddCartItem)
		usersGroup.GET("/cart", r.ledgerHandler.ListCart)
		usersGroup.DELETE("/cart/:itemId", r.ledgerHandler.RemoveCartItem)
	}
}
