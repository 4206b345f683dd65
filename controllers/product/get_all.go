package productControllers

import (
	"net/http"

	"github.com/Rithvik0410/E-commerce-Incture/controllers/respond"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

// GET /products
func GetProducts(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.GetAllProducts(c.Request.Context())
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
