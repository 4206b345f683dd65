package routes

import (
	productControllers "github.com/Rithvik0410/E-commerce-Incture/controllers/product"
	"github.com/Rithvik0410/E-commerce-Incture/middleware"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(r *gin.Engine, products *services.ProductService) {
	group := r.Group("/products")
	{
		group.GET("", productControllers.GetProducts(products))
		group.GET("/:id", productControllers.GetProductByID(products))
		group.GET("/export/excel", productControllers.ExportProductsToExcel(products))

		// Catalog mutations are guarded by the admin API key.
		group.POST("", middleware.ValidateAPIKey, productControllers.AddProduct(products))
		group.PUT("/:id", middleware.ValidateAPIKey, productControllers.UpdateProduct(products))
		group.DELETE("/:id", middleware.ValidateAPIKey, productControllers.DeleteProduct(products))
	}
}
