package productControllers

import (
	"net/http"
	"strconv"

	"github.com/Rithvik0410/E-commerce-Incture/controllers/respond"
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

// GET /products/:id
func GetProductByID(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseID(c, "id")
		if !ok {
			return
		}
		product, err := products.GetProductByID(c.Request.Context(), productID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
