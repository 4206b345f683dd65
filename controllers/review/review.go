package reviewControllers

import (
	"net/http"
	"strconv"

	"github.com/Rithvik0410/E-commerce-Incture/controllers/respond"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// POST /reviews/product/:productId
func AddReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseID(c, "productId")
		if !ok {
			return
		}
		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review, err := reviews.AddReview(c.Request.Context(), productID, req.Rating, req.Comment)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// GET /reviews/product/:productId
func GetProductReviews(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseID(c, "productId")
		if !ok {
			return
		}
		list, err := reviews.GetProductReviews(c.Request.Context(), productID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /reviews/:reviewId
func GetReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, ok := parseID(c, "reviewId")
		if !ok {
			return
		}
		review, err := reviews.GetReview(c.Request.Context(), reviewID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// PUT /reviews/:reviewId
func UpdateReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, ok := parseID(c, "reviewId")
		if !ok {
			return
		}
		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review, err := reviews.UpdateReview(c.Request.Context(), reviewID, req.Rating, req.Comment)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// DELETE /reviews/:reviewId
func DeleteReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, ok := parseID(c, "reviewId")
		if !ok {
			return
		}
		if err := reviews.DeleteReview(c.Request.Context(), reviewID); err != nil {
			respond.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
