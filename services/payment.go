package services

import (
	"context"
	"errors"

	"github.com/Rithvik0410/E-commerce-Incture/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentService struct {
	db      *gorm.DB
	logger  *zap.Logger
	gateway Gateway
	orders  *OrderService
}

func NewPaymentService(db *gorm.DB, logger *zap.Logger, gateway Gateway, orders *OrderService) *PaymentService {
	return &PaymentService{db: db, logger: logger, gateway: gateway, orders: orders}
}

// CreatePayment attaches a PENDING payment to an order. The unique index on
// payments.order_id makes the second of two racing creates fail at commit,
// which is translated to ErrPaymentExists.
func (s *PaymentService) CreatePayment(ctx context.Context, orderID uint, method string) (*models.Payment, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	var existing models.Payment
	err := s.db.WithContext(ctx).Where("order_id = ?", order.ID).First(&existing).Error
	if err == nil {
		return nil, ErrPaymentExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	parsed, err := models.ParsePaymentMethod(method)
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		OrderID: order.ID,
		Method:  parsed,
		Status:  models.PaymentStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPaymentExists
		}
		s.logger.Error("failed to create payment", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

// ProcessPayment runs the gateway outcome for a pending payment. Completion
// also marks the order PAID; failure leaves the order untouched.
func (s *PaymentService) ProcessPayment(ctx context.Context, paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.Status != models.PaymentStatusPending {
		return nil, ErrPaymentProcessed
	}

	approved, err := s.gateway.Authorize(ctx, &payment)
	if err != nil {
		s.logger.Error("gateway authorization failed", zap.Uint("payment_id", paymentID), zap.Error(err))
		return nil, err
	}

	var paidOrder *models.Order
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !approved {
			payment.Status = models.PaymentStatusFailed
			return tx.Save(&payment).Error
		}

		payment.Status = models.PaymentStatusCompleted
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		order, err := s.orders.updateStatusTx(tx, payment.OrderID, models.OrderStatusPaid)
		if err != nil {
			return err
		}
		paidOrder = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if paidOrder != nil {
		s.orders.notify(*paidOrder)
	}

	s.logger.Info("payment processed",
		zap.Uint("payment_id", payment.ID),
		zap.Uint("order_id", payment.OrderID),
		zap.String("status", string(payment.Status)))
	return &payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// GetPaymentByOrder distinguishes a missing order from an order that simply
// has no payment attached yet.
func (s *PaymentService) GetPaymentByOrder(ctx context.Context, orderID uint) (*models.Payment, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	var payment models.Payment
	if err := s.db.WithContext(ctx).Where("order_id = ?", order.ID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPaymentForOrder
		}
		return nil, err
	}
	return &payment, nil
}
