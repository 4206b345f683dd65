package services

import (
	"context"
	"errors"

	"github.com/Rithvik0410/E-commerce-Incture/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService struct {
	db         *gorm.DB
	logger     *zap.Logger
	statusHook func(models.Order)
}

func NewOrderService(db *gorm.DB, logger *zap.Logger) *OrderService {
	return &OrderService{db: db, logger: logger}
}

// SetStatusHook registers a callback fired after every committed status
// change. Used for the live order feed.
func (s *OrderService) SetStatusHook(hook func(models.Order)) {
	s.statusHook = hook
}

func (s *OrderService) notify(order models.Order) {
	if s.statusHook != nil {
		s.statusHook(order)
	}
}

// CreateOrderFromCart snapshots a non-empty cart into a PENDING order. Every
// order item freezes the product's current unit price. The order, its items
// and the clearing of the cart commit or roll back together.
func (s *OrderService) CreateOrderFromCart(ctx context.Context, cartID uint) (*models.Order, error) {
	var cart models.Cart
	if err := s.db.WithContext(ctx).Preload("Items").First(&cart, cartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := models.Order{
		UserID: cart.UserID,
		Status: models.OrderStatusPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total float64
		items := make([]models.OrderItem, 0, len(cart.Items))

		for _, cartItem := range cart.Items {
			var product models.Product
			if err := tx.First(&product, cartItem.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}

			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  cartItem.Quantity,
				Price:     product.Price,
			})
			total += product.Price * float64(cartItem.Quantity)
		}

		order.Items = items
		order.TotalPrice = total

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		s.logger.Error("failed to create order from cart", zap.Uint("cart_id", cartID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("cart_id", cartID),
		zap.Float64("total_price", order.TotalPrice))
	return &order, nil
}

func (s *OrderService) GetOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus moves an order along the forward-only transition table.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, status models.OrderStatus) (*models.Order, error) {
	var order *models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		order, txErr = s.updateStatusTx(tx, orderID, status)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.notify(*order)
	return order, nil
}

// updateStatusTx applies a validated status transition inside an existing
// transaction. Callers fire the status hook themselves after commit.
func (s *OrderService) updateStatusTx(tx *gorm.DB, orderID uint, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, ErrIllegalStatusTransition
	}

	if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("status", status).Error; err != nil {
		s.logger.Error("failed to update order status",
			zap.Uint("order_id", orderID),
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, err
	}
	order.Status = status
	return &order, nil
}
