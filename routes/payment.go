package routes

import (
	paymentControllers "github.com/Rithvik0410/E-commerce-Incture/controllers/payment"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

func SetupPaymentRoutes(r *gin.Engine, payments *services.PaymentService) {
	group := r.Group("/payments")
	{
		group.POST("/order/:orderId", paymentControllers.CreatePayment(payments))
		group.POST("/:paymentId/process", paymentControllers.ProcessPayment(payments))
		group.GET("/order/:orderId", paymentControllers.GetPaymentByOrder(payments))
		group.GET("/:paymentId", paymentControllers.GetPayment(payments))
	}
}
