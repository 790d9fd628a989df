package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/choprest/internal/models"
)

// AddFavorite saves the restaurant for the user. Saving it twice is a no-op.
func (r *Repository) AddFavorite(ctx context.Context, userID, restaurantID int64) error {
	query := `
		INSERT INTO favorites (user_id, restaurant_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, restaurant_id) DO NOTHING;
	`

	if _, err := r.db.Exec(ctx, query, userID, restaurantID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

// RemoveFavorite deletes the saved restaurant. Removing a missing favorite is a no-op.
func (r *Repository) RemoveFavorite(ctx context.Context, userID, restaurantID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND restaurant_id = $2;`

	if _, err := r.db.Exec(ctx, query, userID, restaurantID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

// FavoriteExists reports whether the user saved the restaurant.
func (r *Repository) FavoriteExists(ctx context.Context, userID, restaurantID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND restaurant_id = $2);`

	if err := r.db.QueryRow(ctx, query, userID, restaurantID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return exists, nil
}

// ListFavoriteRestaurants returns the restaurants saved by the user, most recent first.
func (r *Repository) ListFavoriteRestaurants(ctx context.Context, userID int64) ([]models.Restaurant, error) {
	query := `
		SELECT r.id, r.restaurant_name, r.branch_name, r.region_name, r.lat, r.lng, r.road_address, r.phone_number
		FROM favorites f
		JOIN restaurants r ON r.id = f.restaurant_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC;
	`

	restaurants, err := r.queryRestaurants(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites of user %d: %w", userID, err)
	}

	return restaurants, nil
}
