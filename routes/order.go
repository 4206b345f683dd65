package routes

import (
	orderControllers "github.com/Rithvik0410/E-commerce-Incture/controllers/order"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(r *gin.Engine, orders *services.OrderService, hub *orderControllers.Hub) {
	group := r.Group("/orders")
	{
		// Snapshot a cart into a new order
		group.POST("/create-from-cart/:cartId", orderControllers.CreateOrderFromCart(orders))

		// websocket endpoint for real-time order updates
		group.GET("/ws", hub.Handler())

		// Fetch orders for a specific user
		group.GET("/user/:userId", orderControllers.GetUserOrders(orders))

		group.GET("/:orderId", orderControllers.GetOrderByID(orders))

		// Update order status (e.g. paid, cancelled)
		group.PUT("/:orderId/status", orderControllers.UpdateOrderStatus(orders))
	}
}
