package routes

import (
	reviewControllers "github.com/Rithvik0410/E-commerce-Incture/controllers/review"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

func SetupReviewRoutes(r *gin.Engine, reviews *services.ReviewService) {
	group := r.Group("/reviews")
	{
		group.POST("/product/:productId", reviewControllers.AddReview(reviews))
		group.GET("/product/:productId", reviewControllers.GetProductReviews(reviews))
		group.GET("/:reviewId", reviewControllers.GetReview(reviews))
		group.PUT("/:reviewId", reviewControllers.UpdateReview(reviews))
		group.DELETE("/:reviewId", reviewControllers.DeleteReview(reviews))
	}
}
