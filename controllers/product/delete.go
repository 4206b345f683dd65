package productControllers

import (
	"fmt"
	"net/http"

	"github.com/Rithvik0410/E-commerce-Incture/controllers/respond"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

// DELETE /products/:id
func DeleteProduct(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseID(c, "id")
		if !ok {
			return
		}
		if err := products.DeleteProduct(c.Request.Context(), productID); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Product with ID %d deleted successfully.", productID),
		})
	}
}
