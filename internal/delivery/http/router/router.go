// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TenantHandler  *handler.TenantHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler

	TenantMiddleware *middleware.TenantMiddleware
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	tenantHandler  *handler.TenantHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler

	tenantMiddleware *middleware.TenantMiddleware
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		tenantHandler:    params.TenantHandler,
		productHandler:   params.ProductHandler,
		cartHandler:      params.CartHandler,
		orderHandler:     params.OrderHandler,
		tenantMiddleware: params.TenantMiddleware,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Tenant provisioning runs without a tenant header, everything else
	// below is resolved against one.
	api.POST("/tenants", r.tenantHandler.CreateTenant)

	authGroup := api.Group("/auth", r.tenantMiddleware.Resolve)
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	productGroup := api.Group("/products", r.tenantMiddleware.Resolve)
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)

		adminOnly := []echo.MiddlewareFunc{
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin),
		}
		productGroup.POST("", r.productHandler.CreateProduct, adminOnly...)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct, adminOnly...)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, adminOnly...)
	}

	cartGroup := api.Group("/cart", r.tenantMiddleware.Resolve, r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
	}

	orderGroup := api.Group("/orders", r.tenantMiddleware.Resolve, r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PUT("/:id/status", r.orderHandler.UpdateOrderStatus, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}
}
