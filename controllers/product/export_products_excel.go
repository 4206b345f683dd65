package productControllers

import (
	"net/http"

	"github.com/Rithvik0410/E-commerce-Incture/controllers/respond"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /products/export/excel
func ExportProductsToExcel(products *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.GetAllProducts(c.Request.Context())
		if err != nil {
			respond.Error(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Name", "Description", "Price", "Quantity", "CreatedAt"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Quantity)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
