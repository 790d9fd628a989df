package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/choprest/internal/models"
)

const blacklistColumns = `id, user_id, restaurant_id, user_name, user_phone, reason, reservation_id, created_by, created_at`

// AddBlacklist inserts the entry and fills in its generated id and creation time.
func (r *Repository) AddBlacklist(ctx context.Context, entry *models.BlacklistEntry) error {
	query := `
		INSERT INTO blacklist (user_id, restaurant_id, user_name, user_phone, reason, reservation_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`

	err := r.db.QueryRow(ctx, query,
		entry.UserID,
		entry.RestaurantID,
		entry.UserName,
		entry.UserPhone,
		entry.Reason,
		entry.ReservationID,
		entry.CreatedBy,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert blacklist entry: %w", err)
	}

	return nil
}

// BlacklistExists reports whether the user is barred from the restaurant.
func (r *Repository) BlacklistExists(ctx context.Context, userID, restaurantID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM blacklist WHERE user_id = $1 AND restaurant_id = $2);`

	if err := r.db.QueryRow(ctx, query, userID, restaurantID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}

	return exists, nil
}

func (r *Repository) ListBlacklistByRestaurant(
	ctx context.Context,
	restaurantID int64,
) ([]models.BlacklistEntry, error) {
	query := `SELECT ` + blacklistColumns + ` FROM blacklist WHERE restaurant_id = $1 ORDER BY created_at DESC;`

	entries, err := r.queryBlacklist(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blacklist of restaurant %d: %w", restaurantID, err)
	}

	return entries, nil
}

func (r *Repository) ListBlacklistByUser(ctx context.Context, userID int64) ([]models.BlacklistEntry, error) {
	query := `SELECT ` + blacklistColumns + ` FROM blacklist WHERE user_id = $1 ORDER BY created_at DESC;`

	entries, err := r.queryBlacklist(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blacklist of user %d: %w", userID, err)
	}

	return entries, nil
}

// RemoveBlacklist deletes the entry. A missing entry yields ErrNotFound.
func (r *Repository) RemoveBlacklist(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blacklist WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to remove blacklist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to remove blacklist entry %d: %w", id, ErrNotFound)
	}

	return nil
}

func (r *Repository) queryBlacklist(ctx context.Context, query string, args ...any) ([]models.BlacklistEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query blacklist: %w", err)
	}
	defer rows.Close()

	var entries []models.BlacklistEntry
	for rows.Next() {
		var entry models.BlacklistEntry
		if err = rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.RestaurantID,
			&entry.UserName,
			&entry.UserPhone,
			&entry.Reason,
			&entry.ReservationID,
			&entry.CreatedBy,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan blacklist entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return entries, nil
}
