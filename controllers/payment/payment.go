package paymentControllers

import (
	"net/http"
	"strconv"

	"github.com/Rithvik0410/E-commerce-Incture/controllers/respond"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

type CreatePaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// POST /payments/order/:orderId
func CreatePayment(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "orderId")
		if !ok {
			return
		}
		var req CreatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		payment, err := payments.CreatePayment(c.Request.Context(), orderID, req.Method)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, payment)
	}
}

// POST /payments/:paymentId/process
func ProcessPayment(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentID, ok := parseID(c, "paymentId")
		if !ok {
			return
		}
		payment, err := payments.ProcessPayment(c.Request.Context(), paymentID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}

// GET /payments/:paymentId
func GetPayment(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		paymentID, ok := parseID(c, "paymentId")
		if !ok {
			return
		}
		payment, err := payments.GetPayment(c.Request.Context(), paymentID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}

// GET /payments/order/:orderId
func GetPaymentByOrder(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "orderId")
		if !ok {
			return
		}
		payment, err := payments.GetPaymentByOrder(c.Request.Context(), orderID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}
