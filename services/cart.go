package services

import (
	"context"
	"errors"
	"time"

	"github.com/Rithvik0410/E-commerce-Incture/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CartService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCartService(db *gorm.DB, logger *zap.Logger) *CartService {
	return &CartService{db: db, logger: logger}
}

// CreateCart opens a new empty cart for an existing user.
func (s *CartService) CreateCart(ctx context.Context, userID uint) (*models.Cart, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	cart := models.Cart{UserID: user.ID}
	if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
		s.logger.Error("failed to create cart", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &cart, nil
}

// AddToCart appends a line item referencing a catalog product.
func (s *CartService) AddToCart(ctx context.Context, cartID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var cart models.Cart
	if err := s.db.WithContext(ctx).First(&cart, cartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	item := models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		s.logger.Error("failed to add cart item", zap.Uint("cart_id", cartID), zap.Error(err))
		return nil, err
	}
	return &item, nil
}

// GetCartItems returns the cart's items with their products preloaded.
func (s *CartService) GetCartItems(ctx context.Context, cartID uint) ([]models.CartItem, error) {
	var cart models.Cart
	if err := s.db.WithContext(ctx).Preload("Items.Product").First(&cart, cartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart.Items, nil
}

// UpdateCartItem changes one item's quantity. Items from other carts are
// rejected with an ownership error.
func (s *CartService) UpdateCartItem(ctx context.Context, cartID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var cart models.Cart
	if err := s.db.WithContext(ctx).First(&cart, cartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	var item models.CartItem
	if err := s.db.WithContext(ctx).First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	if item.CartID != cart.ID {
		return nil, ErrItemNotInCart
	}

	item.Quantity = quantity
	item.AddedAt = time.Now()
	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		s.logger.Error("failed to update cart item", zap.Uint("item_id", itemID), zap.Error(err))
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes a single line item by id.
func (s *CartService) RemoveItem(ctx context.Context, itemID uint) error {
	result := s.db.WithContext(ctx).Delete(&models.CartItem{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearCart removes every item from the cart; the cart record itself stays.
func (s *CartService) ClearCart(ctx context.Context, cartID uint) error {
	var cart models.Cart
	if err := s.db.WithContext(ctx).First(&cart, cartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartNotFound
		}
		return err
	}
	return s.db.WithContext(ctx).Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}
