package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"   // created from a cart, awaiting payment
	OrderStatusPaid      OrderStatus = "PAID"      // payment completed
	OrderStatusCancelled OrderStatus = "CANCELLED" // abandoned before payment
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a raw string onto the closed status set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(s)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusPaid:
		return OrderStatusPaid, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// CanTransitionTo enforces the forward-only lifecycle: PENDING may move to
// PAID or CANCELLED, both of which are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == OrderStatusPending && (next == OrderStatusPaid || next == OrderStatusCancelled)
}

type Order struct {
	ID         uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint        `gorm:"index;not null" json:"user_id"`
	TotalPrice float64     `json:"total_price"`
	Status     OrderStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OrderItem is a frozen snapshot: Price is the product's unit price at
// order-creation time and does not track later catalog changes.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
