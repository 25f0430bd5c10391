package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cartloop/ecommerce-api/config"
	orderControllers "github.com/cartloop/ecommerce-api/controllers/order"
	"github.com/cartloop/ecommerce-api/middleware"
	"github.com/cartloop/ecommerce-api/store"
)

// SetupOrderRoutes registers the "/api/orders" group. Gate order is fixed:
// auth, then admin where required, then the handler.
func SetupOrderRoutes(r *gin.Engine, s store.OrderStore, cfg *config.Config, log *logrus.Logger) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.RequireAuth([]byte(cfg.JWTSecret)))
	{
		// User routes
		orders.GET("/my-orders", orderControllers.GetMyOrdersHandler(s, log))
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(s, log))

		// Admin routes
		orders.GET("/", middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(s, log))
		orders.PATCH("/:id/status", middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(s, log))
	}
}
