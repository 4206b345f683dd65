package models

import (
	"errors"
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentMethodPaypal     PaymentMethod = "PAYPAL"
	PaymentMethodUPI        PaymentMethod = "UPI"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// ParsePaymentMethod maps a raw string onto the fixed method set.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToUpper(s)) {
	case PaymentMethodCreditCard:
		return PaymentMethodCreditCard, nil
	case PaymentMethodDebitCard:
		return PaymentMethodDebitCard, nil
	case PaymentMethodPaypal:
		return PaymentMethodPaypal, nil
	case PaymentMethodUPI:
		return PaymentMethodUPI, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Payment is attached 1:1 to an order. The unique index on OrderID is what
// actually enforces "at most one payment per order" under concurrency; the
// service-level existence check only provides a friendlier error.
type Payment struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint          `gorm:"uniqueIndex;not null" json:"order_id"`
	Method    PaymentMethod `gorm:"type:VARCHAR(20)" json:"method"`
	Status    PaymentStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
