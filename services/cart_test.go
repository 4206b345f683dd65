package services

import (
	"context"
	"testing"

	"github.com/Rithvik0410/E-commerce-Incture/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CartServiceSuite struct {
	suite.Suite

	ctx     context.Context
	db      *gorm.DB
	carts   *CartService
	user    models.User
	product models.Product
}

func (s *CartServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = newTestDB(s.T())
	s.carts = NewCartService(s.db, zap.NewNop())

	s.user = models.User{Name: "Asha", Email: "asha@example.com"}
	s.Require().NoError(s.db.Create(&s.user).Error)

	s.product = models.Product{Name: "Mechanical Keyboard", Price: 100.0, Quantity: 10}
	s.Require().NoError(s.db.Create(&s.product).Error)
}

func (s *CartServiceSuite) TestCreateCart() {
	cart, err := s.carts.CreateCart(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Equal(s.user.ID, cart.UserID)
	s.Empty(cart.Items)
}

func (s *CartServiceSuite) TestCreateCartUnknownUser() {
	_, err := s.carts.CreateCart(s.ctx, 9999)
	s.Require().ErrorIs(err, ErrUserNotFound)
}

func (s *CartServiceSuite) TestAddToCart() {
	cart, err := s.carts.CreateCart(s.ctx, s.user.ID)
	s.Require().NoError(err)

	item, err := s.carts.AddToCart(s.ctx, cart.ID, s.product.ID, 2)
	s.Require().NoError(err)
	s.Equal(cart.ID, item.CartID)
	s.Equal(s.product.ID, item.ProductID)
	s.Equal(2, item.Quantity)

	items, err := s.carts.GetCartItems(s.ctx, cart.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("Mechanical Keyboard", items[0].Product.Name)
	s.Equal(100.0, items[0].Product.Price)
}

func (s *CartServiceSuite) TestAddToCartUnknownCart() {
	_, err := s.carts.AddToCart(s.ctx, 9999, s.product.ID, 1)
	s.Require().ErrorIs(err, ErrCartNotFound)
}

func (s *CartServiceSuite) TestAddToCartUnknownProduct() {
	cart, err := s.carts.CreateCart(s.ctx, s.user.ID)
	s.Require().NoError(err)

	_, err = s.carts.AddToCart(s.ctx, cart.ID, 9999, 1)
	s.Require().ErrorIs(err, ErrProductNotFound)
}

func (s *CartServiceSuite) TestAddToCartRejectsNonPositiveQuantity() {
	cart, err := s.carts.CreateCart(s.ctx, s.user.ID)
	s.Require().NoError(err)

	_, err = s.carts.AddToCart(s.ctx, cart.ID, s.product.ID, 0)
	s.Require().ErrorIs(err, ErrInvalidQuantity)

	_, err = s.carts.AddToCart(s.ctx, cart.ID, s.product.ID, -3)
	s.Require().ErrorIs(err, ErrInvalidQuantity)

	items, err := s.carts.GetCartItems(s.ctx, cart.ID)
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *CartServiceSuite) TestUpdateCartItem() {
	cart, err := s.carts.CreateCart(s.ctx, s.user.ID)
	s.Require().NoError(err)
	item, err := s.carts.AddToCart(s.ctx, cart.ID, s.product.ID, 1)
	s.Require().NoError(err)

	updated, err := s.carts.UpdateCartItem(s.ctx, cart.ID, item.ID, 5)
	s.Require().NoError(err)
	s.Equal(5, updated.Quantity)
}

func (s *CartServiceSuite) TestUpdateCartItemRejectsForeignItem() {
	cart, err := s.carts.CreateCart(s.ctx, s.user.ID)
	s.Require().NoError(err)
	other, err := s.carts.CreateCart(s.ctx, s.user.ID)
	s.Require().NoError(err)

	item, err := s.carts.AddToCart(s.ctx, other.ID, s.product.ID, 1)
	s.Require().NoError(err)

	_, err = s.carts.UpdateCartItem(s.ctx, cart.ID, item.ID, 2)
	s.Require().ErrorIs(err, ErrItemNotInCart)

	// Quantity unchanged on the foreign item.
	var stored models.CartItem
	s.Require().NoError(s.db.First(&stored, item.ID).Error)
	s.Equal(1, stored.Quantity)
}

func (s *CartServiceSuite) TestUpdateCartItemRejectsNonPositiveQuantity() {
	cart, err := s.carts.CreateCart(s.ctx, s.user.ID)
	s.Require().NoError(err)
	item, err := s.carts.AddToCart(s.ctx, cart.ID, s.product.ID, 1)
	s.Require().NoError(err)

	_, err = s.carts.UpdateCartItem(s.ctx, cart.ID, item.ID, 0)
	s.Require().ErrorIs(err, ErrInvalidQuantity)
}

func (s *CartServiceSuite) TestRemoveItem() {
	cart, err := s.carts.CreateCart(s.ctx, s.user.ID)
	s.Require().NoError(err)
	item, err := s.carts.AddToCart(s.ctx, cart.ID, s.product.ID, 1)
	s.Require().NoError(err)

	s.Require().NoError(s.carts.RemoveItem(s.ctx, item.ID))

	items, err := s.carts.GetCartItems(s.ctx, cart.ID)
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *CartServiceSuite) TestRemoveItemUnknown() {
	s.Require().ErrorIs(s.carts.RemoveItem(s.ctx, 9999), ErrCartItemNotFound)
}

func (s *CartServiceSuite) TestClearCart() {
	cart, err := s.carts.CreateCart(s.ctx, s.user.ID)
	s.Require().NoError(err)
	_, err = s.carts.AddToCart(s.ctx, cart.ID, s.product.ID, 1)
	s.Require().NoError(err)
	_, err = s.carts.AddToCart(s.ctx, cart.ID, s.product.ID, 2)
	s.Require().NoError(err)

	s.Require().NoError(s.carts.ClearCart(s.ctx, cart.ID))

	items, err := s.carts.GetCartItems(s.ctx, cart.ID)
	s.Require().NoError(err)
	s.Empty(items)

	// The cart record itself survives.
	var stored models.Cart
	s.Require().NoError(s.db.First(&stored, cart.ID).Error)
}

func (s *CartServiceSuite) TestClearCartUnknown() {
	s.Require().ErrorIs(s.carts.ClearCart(s.ctx, 9999), ErrCartNotFound)
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceSuite))
}
