package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/Rithvik0410/E-commerce-Incture/controllers/respond"
	"github.com/Rithvik0410/E-commerce-Incture/models"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// POST /orders/create-from-cart/:cartId
func CreateOrderFromCart(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseID(c, "cartId")
		if !ok {
			return
		}
		order, err := orders.CreateOrderFromCart(c.Request.Context(), cartID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders/user/:userId
func GetUserOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		list, err := orders.GetOrdersByUser(c.Request.Context(), userID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /orders/:orderId
func GetOrderByID(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "orderId")
		if !ok {
			return
		}
		order, err := orders.GetOrder(c.Request.Context(), orderID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderId/status?status=S
func UpdateOrderStatus(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "orderId")
		if !ok {
			return
		}
		status, err := models.ParseOrderStatus(c.Query("status"))
		if err != nil {
			respond.Error(c, err)
			return
		}
		order, err := orders.UpdateOrderStatus(c.Request.Context(), orderID, status)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
