package routes

import (
	cartControllers "github.com/Rithvik0410/E-commerce-Incture/controllers/cart"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

func SetupCartRoutes(r *gin.Engine, carts *services.CartService) {
	cart := r.Group("/cart")
	{
		cart.POST("/create/:userId", cartControllers.CreateCart(carts))
		cart.POST("/:cartId/add/:productId", cartControllers.AddToCart(carts))
		cart.GET("/:cartId/items", cartControllers.GetCartItems(carts))
		cart.PUT("/:cartId/update/:itemId", cartControllers.UpdateCartItem(carts))
		cart.DELETE("/item/:itemId", cartControllers.RemoveItem(carts))
		cart.DELETE("/:cartId/clear", cartControllers.ClearCart(carts))
	}
}
