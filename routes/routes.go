package routes

import (
	orderControllers "github.com/Rithvik0410/E-commerce-Incture/controllers/order"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	users := services.NewUserService(db, logger)
	products := services.NewProductService(db, logger)
	carts := services.NewCartService(db, logger)
	orders := services.NewOrderService(db, logger)
	payments := services.NewPaymentService(db, logger, services.NewSimulatedGateway(0.9), orders)
	reviews := services.NewReviewService(db, logger)

	// Live order feed: any committed status change is pushed to ws clients.
	hub := orderControllers.NewHub(logger)
	orders.SetStatusHook(hub.Broadcast)

	SetupUserRoutes(r, users)
	SetupProductRoutes(r, products)
	SetupCartRoutes(r, carts)
	SetupOrderRoutes(r, orders, hub)
	SetupPaymentRoutes(r, payments)
	SetupReviewRoutes(r, reviews)
}
