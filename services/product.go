package services

import (
	"context"
	"errors"

	"github.com/Rithvik0410/E-commerce-Incture/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProductService(db *gorm.DB, logger *zap.Logger) *ProductService {
	return &ProductService{db: db, logger: logger}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, productID uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) AddProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		s.logger.Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.Price < 0 {
		return nil, ErrInvalidPrice
	}

	var existing models.Product
	if err := s.db.WithContext(ctx).First(&existing, product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(product).Error; err != nil {
		s.logger.Error("failed to update product", zap.Uint("product_id", product.ID), zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
