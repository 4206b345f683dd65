package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/Rithvik0410/E-commerce-Incture/controllers/respond"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

// CartItemView flattens the product into the item and omits the cart
// back-reference.
type CartItemView struct {
	ID           uint    `json:"id"`
	Quantity     int     `json:"quantity"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

func parseQuantity(c *gin.Context) (int, bool) {
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be an integer"})
		return 0, false
	}
	return quantity, true
}

// POST /cart/create/:userId
func CreateCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			return
		}
		cart, err := carts.CreateCart(c.Request.Context(), userID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart/:cartId/add/:productId?quantity=N
func AddToCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseID(c, "cartId")
		if !ok {
			return
		}
		productID, ok := parseID(c, "productId")
		if !ok {
			return
		}
		quantity, ok := parseQuantity(c)
		if !ok {
			return
		}

		item, err := carts.AddToCart(c.Request.Context(), cartID, productID, quantity)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// GET /cart/:cartId/items
func GetCartItems(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseID(c, "cartId")
		if !ok {
			return
		}

		items, err := carts.GetCartItems(c.Request.Context(), cartID)
		if err != nil {
			respond.Error(c, err)
			return
		}

		views := make([]CartItemView, 0, len(items))
		for _, item := range items {
			views = append(views, CartItemView{
				ID:           item.ID,
				Quantity:     item.Quantity,
				ProductName:  item.Product.Name,
				ProductPrice: item.Product.Price,
			})
		}
		c.JSON(http.StatusOK, views)
	}
}

// PUT /cart/:cartId/update/:itemId?quantity=N
func UpdateCartItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseID(c, "cartId")
		if !ok {
			return
		}
		itemID, ok := parseID(c, "itemId")
		if !ok {
			return
		}
		quantity, ok := parseQuantity(c)
		if !ok {
			return
		}

		item, err := carts.UpdateCartItem(c.Request.Context(), cartID, itemID, quantity)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /cart/item/:itemId
func RemoveItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, ok := parseID(c, "itemId")
		if !ok {
			return
		}
		if err := carts.RemoveItem(c.Request.Context(), itemID); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart/:cartId/clear
func ClearCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, ok := parseID(c, "cartId")
		if !ok {
			return
		}
		if err := carts.ClearCart(c.Request.Context(), cartID); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
