package services

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrItemNotInCart    = errors.New("item does not belong to this cart")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrInvalidPrice     = errors.New("price must not be negative")

	ErrEmptyCart               = errors.New("cannot create order from empty cart")
	ErrOrderNotFound           = errors.New("order not found")
	ErrIllegalStatusTransition = errors.New("illegal order status transition")

	ErrPaymentNotFound   = errors.New("payment not found")
	ErrNoPaymentForOrder = errors.New("no payment found for order")
	ErrPaymentExists     = errors.New("payment already exists for this order")
	ErrPaymentProcessed  = errors.New("payment has already been processed")

	ErrReviewNotFound = errors.New("review not found")

	// Message wording is part of the API contract for review validation.
	ErrInvalidRating = errors.New("Rating must be between 1 and 5")
)
