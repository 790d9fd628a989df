package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/repository"
)

// ErrInvalidReview is returned for reviews missing the author or the restaurant, rated outside
// the scale, or for empty owner comments.
var ErrInvalidReview = errors.New("invalid review")

// ReviewService manages guest reviews.
type ReviewService struct {
	log   *slog.Logger
	store repository.ReviewStore
}

func NewReviewService(log *slog.Logger, store repository.ReviewStore) *ReviewService {
	return &ReviewService{log: log, store: store}
}

// Create stores a review.
func (rs *ReviewService) Create(ctx context.Context, review models.Review) (*models.Review, error) {
	switch {
	case review.UserID <= 0 || review.RestaurantID <= 0:
		return nil, fmt.Errorf("%w: userId and restaurantId are required", ErrInvalidReview)
	case review.Rating < models.MinRating || review.Rating > models.MaxRating:
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidReview, models.MinRating, models.MaxRating)
	}

	review.Content = strings.TrimSpace(review.Content)
	if review.Images == nil {
		review.Images = []string{}
	}
	review.OwnerComment = nil
	review.OwnerCommentAt = nil

	if err := rs.store.CreateReview(ctx, &review); err != nil {
		return nil, err
	}

	rs.log.InfoContext(ctx, "Review created",
		"review", review.ID, "restaurant", review.RestaurantID, "rating", review.Rating)

	return &review, nil
}

func (rs *ReviewService) ListByRestaurant(ctx context.Context, restaurantID int64) ([]models.Review, error) {
	return rs.store.ListReviewsByRestaurant(ctx, restaurantID)
}

func (rs *ReviewService) ListByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	return rs.store.ListReviewsByUser(ctx, userID)
}

// Comment sets the owner's answer to a review, replacing an earlier one.
func (rs *ReviewService) Comment(ctx context.Context, id int64, comment string) (*models.Review, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrInvalidReview)
	}

	review, err := rs.store.SetOwnerComment(ctx, id, comment, time.Now())
	if err != nil {
		return nil, err
	}

	rs.log.InfoContext(ctx, "Owner commented on review", "review", id)

	return review, nil
}
