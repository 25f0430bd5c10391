package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cartloop/ecommerce-api/middleware"
	"github.com/cartloop/ecommerce-api/models"
	"github.com/cartloop/ecommerce-api/store"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// serverError converts any unexpected failure into the flat 500 envelope. The
// raw message is exposed on purpose; there is no internal/external error split
// in this service.
func serverError(c *gin.Context, log *logrus.Logger, op string, err error) {
	log.WithError(err).Errorf("error in %s controller", op)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
}

// GetMyOrdersHandler lists the caller's own orders, newest first.
func GetMyOrdersHandler(s store.OrderStore, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CallerFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		orders, err := s.ListByUser(c.Request.Context(), caller.ID)
		if err != nil {
			serverError(c, log, "getUserOrders", err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByIDHandler resolves one order. Only the owning user or an admin may
// read it; ownership is compared by user id value.
func GetOrderByIDHandler(s store.OrderStore, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CallerFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		order, err := s.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		if err != nil {
			serverError(c, log, "getOrderById", err)
			return
		}
		if order.UserID != caller.ID && caller.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetAllOrdersHandler lists every order. The routing layer admits admins only.
func GetAllOrdersHandler(s store.OrderStore, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.ListAll(c.Request.Context())
		if err != nil {
			serverError(c, log, "getAllOrders", err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatusHandler sets a new status on an order and returns the
// updated, fully populated order. The routing layer admits admins only.
func UpdateOrderStatusHandler(s store.OrderStore, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
			return
		}
		status, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
			return
		}
		order, err := s.UpdateStatus(c.Request.Context(), c.Param("id"), status)
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		if err != nil {
			serverError(c, log, "updateOrderStatus", err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
