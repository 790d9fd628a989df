package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/jackc/pgx/v5"
)

const reviewColumns = `id, reservation_id, user_id, restaurant_id, user_name, rating, content, images,
	owner_comment, owner_comment_at, created_at, updated_at`

// CreateReview inserts the review and fills in its generated id and timestamps.
// Images are stored as a JSON array.
func (r *Repository) CreateReview(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (reservation_id, user_id, restaurant_id, user_name, rating, content, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at;
	`

	err := r.db.QueryRow(ctx, query,
		review.ReservationID,
		review.UserID,
		review.RestaurantID,
		review.UserName,
		review.Rating,
		review.Content,
		review.Images,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	return nil
}

func (r *Repository) GetReview(ctx context.Context, id int64) (*models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1;`

	var review models.Review
	if err := scanReview(r.db.QueryRow(ctx, query, id), &review); err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to get review %d", id))
	}

	return &review, nil
}

// ListReviewsByRestaurant returns the reviews of a restaurant, newest first.
func (r *Repository) ListReviewsByRestaurant(ctx context.Context, restaurantID int64) ([]models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE restaurant_id = $1 ORDER BY created_at DESC;`

	reviews, err := r.queryReviews(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews of restaurant %d: %w", restaurantID, err)
	}

	return reviews, nil
}

// ListReviewsByUser returns the reviews a user wrote, newest first.
func (r *Repository) ListReviewsByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE user_id = $1 ORDER BY created_at DESC;`

	reviews, err := r.queryReviews(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews of user %d: %w", userID, err)
	}

	return reviews, nil
}

// SetOwnerComment stores the owner's answer and returns the updated review.
// A missing review yields ErrNotFound.
func (r *Repository) SetOwnerComment(
	ctx context.Context,
	id int64,
	comment string,
	at time.Time,
) (*models.Review, error) {
	query := `
		UPDATE reviews SET owner_comment = $2, owner_comment_at = $3, updated_at = $3
		WHERE id = $1
		RETURNING ` + reviewColumns + `;`

	var review models.Review
	if err := scanReview(r.db.QueryRow(ctx, query, id, comment, at), &review); err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to comment on review %d", id))
	}

	return &review, nil
}

func scanReview(row pgx.Row, review *models.Review) error {
	return row.Scan(
		&review.ID,
		&review.ReservationID,
		&review.UserID,
		&review.RestaurantID,
		&review.UserName,
		&review.Rating,
		&review.Content,
		&review.Images,
		&review.OwnerComment,
		&review.OwnerCommentAt,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
}

func (r *Repository) queryReviews(ctx context.Context, query string, args ...any) ([]models.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		if err = scanReview(rows, &review); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return reviews, nil
}
