package services

import (
	"context"
	"testing"

	"github.com/Rithvik0410/E-commerce-Incture/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReviewServiceSuite struct {
	suite.Suite

	ctx     context.Context
	db      *gorm.DB
	reviews *ReviewService
	product models.Product
}

func (s *ReviewServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = newTestDB(s.T())
	s.reviews = NewReviewService(s.db, zap.NewNop())

	s.product = models.Product{Name: "Mechanical Keyboard", Price: 100.0, Quantity: 10}
	s.Require().NoError(s.db.Create(&s.product).Error)
}

func (s *ReviewServiceSuite) TestAddReview() {
	review, err := s.reviews.AddReview(s.ctx, s.product.ID, 4, "solid keys")
	s.Require().NoError(err)
	s.Equal(4, review.Rating)
	s.Equal(s.product.ID, review.ProductID)
}

func (s *ReviewServiceSuite) TestAddReviewRejectsOutOfRangeRating() {
	for _, rating := range []int{0, 6, -1} {
		_, err := s.reviews.AddReview(s.ctx, s.product.ID, rating, "")
		s.Require().ErrorIs(err, ErrInvalidRating)
		s.Contains(err.Error(), "Rating must be between 1 and 5")
	}

	var count int64
	s.Require().NoError(s.db.Model(&models.Review{}).Count(&count).Error)
	s.Zero(count)
}

func (s *ReviewServiceSuite) TestAddReviewUnknownProduct() {
	_, err := s.reviews.AddReview(s.ctx, 9999, 3, "")
	s.Require().ErrorIs(err, ErrProductNotFound)
}

func (s *ReviewServiceSuite) TestUpdateReview() {
	review, err := s.reviews.AddReview(s.ctx, s.product.ID, 3, "fine")
	s.Require().NoError(err)

	updated, err := s.reviews.UpdateReview(s.ctx, review.ID, 5, "grew on me")
	s.Require().NoError(err)
	s.Equal(5, updated.Rating)
	s.Equal("grew on me", updated.Comment)
}

func (s *ReviewServiceSuite) TestUpdateReviewRejectsBadRatingAndKeepsStored() {
	review, err := s.reviews.AddReview(s.ctx, s.product.ID, 3, "fine")
	s.Require().NoError(err)

	_, err = s.reviews.UpdateReview(s.ctx, review.ID, 6, "too good")
	s.Require().ErrorIs(err, ErrInvalidRating)
	s.Contains(err.Error(), "Rating must be between 1 and 5")

	stored, err := s.reviews.GetReview(s.ctx, review.ID)
	s.Require().NoError(err)
	s.Equal(3, stored.Rating)
	s.Equal("fine", stored.Comment)
}

func (s *ReviewServiceSuite) TestGetProductReviews() {
	_, err := s.reviews.AddReview(s.ctx, s.product.ID, 2, "meh")
	s.Require().NoError(err)
	_, err = s.reviews.AddReview(s.ctx, s.product.ID, 5, "love it")
	s.Require().NoError(err)

	list, err := s.reviews.GetProductReviews(s.ctx, s.product.ID)
	s.Require().NoError(err)
	s.Len(list, 2)
}

func (s *ReviewServiceSuite) TestGetProductReviewsUnknownProduct() {
	_, err := s.reviews.GetProductReviews(s.ctx, 9999)
	s.Require().ErrorIs(err, ErrProductNotFound)
}

func (s *ReviewServiceSuite) TestDeleteReview() {
	review, err := s.reviews.AddReview(s.ctx, s.product.ID, 1, "broke in a week")
	s.Require().NoError(err)

	s.Require().NoError(s.reviews.DeleteReview(s.ctx, review.ID))

	_, err = s.reviews.GetReview(s.ctx, review.ID)
	s.Require().ErrorIs(err, ErrReviewNotFound)
}

func (s *ReviewServiceSuite) TestDeleteReviewUnknown() {
	s.Require().ErrorIs(s.reviews.DeleteReview(s.ctx, 9999), ErrReviewNotFound)
}

func TestReviewServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceSuite))
}
