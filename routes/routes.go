package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cartloop/ecommerce-api/config"
	"github.com/cartloop/ecommerce-api/middleware"
	"github.com/cartloop/ecommerce-api/store"
)

// Setup wires every route group onto the engine.
func Setup(r *gin.Engine, orders store.OrderStore, cfg *config.Config, log *logrus.Logger) {
	r.GET("/api/health", healthHandler)

	SetupOrderRoutes(r, orders, cfg, log)

	r.NoRoute(middleware.NotFound)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
