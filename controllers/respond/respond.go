// Package respond maps domain errors onto HTTP responses, the way the gRPC
// transport layers map repository errors onto status codes.
package respond

import (
	"errors"
	"net/http"

	"github.com/Rithvik0410/E-commerce-Incture/models"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

func Error(c *gin.Context, err error) {
	c.JSON(statusOf(err), gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrNoPaymentForOrder),
		errors.Is(err, services.ErrReviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, models.ErrInvalidOrderStatus),
		errors.Is(err, models.ErrInvalidPaymentMethod):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrItemNotInCart),
		errors.Is(err, services.ErrPaymentExists),
		errors.Is(err, services.ErrPaymentProcessed),
		errors.Is(err, services.ErrIllegalStatusTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
