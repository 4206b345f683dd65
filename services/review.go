package services

import (
	"context"
	"errors"

	"github.com/Rithvik0410/E-commerce-Incture/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReviewService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewReviewService(db *gorm.DB, logger *zap.Logger) *ReviewService {
	return &ReviewService{db: db, logger: logger}
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func (s *ReviewService) AddReview(ctx context.Context, productID uint, rating int, comment string) (*models.Review, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if !validRating(rating) {
		return nil, ErrInvalidRating
	}

	review := models.Review{
		ProductID: product.ID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		s.logger.Error("failed to create review", zap.Uint("product_id", productID), zap.Error(err))
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) GetProductReviews(ctx context.Context, productID uint) ([]models.Review, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Preload("Reviews").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product.Reviews, nil
}

func (s *ReviewService) GetReview(ctx context.Context, reviewID uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, reviewID uint, rating int, comment string) (*models.Review, error) {
	review, err := s.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if !validRating(rating) {
		return nil, ErrInvalidRating
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.db.WithContext(ctx).Save(review).Error; err != nil {
		s.logger.Error("failed to update review", zap.Uint("review_id", reviewID), zap.Error(err))
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, reviewID uint) error {
	review, err := s.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(review).Error
}
