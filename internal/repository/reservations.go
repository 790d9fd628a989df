package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = `id, user_id, restaurant_id, restaurant_name, user_name, user_phone, user_email,
	reservation_date, reservation_time, guests, special_requests, status, rejection_reason,
	visit_status, visit_confirmed_at, no_show_reason, is_blacklisted, blacklist_reason, created_at`

// CreateReservation inserts the reservation and fills in its generated id and creation time.
func (r *Repository) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	query := `
		INSERT INTO reservations (
			user_id, restaurant_id, restaurant_name, user_name, user_phone, user_email,
			reservation_date, reservation_time, guests, special_requests, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at;
	`

	err := r.db.QueryRow(ctx, query,
		reservation.UserID,
		reservation.RestaurantID,
		reservation.RestaurantName,
		reservation.UserName,
		reservation.UserPhone,
		reservation.UserEmail,
		reservation.Date,
		reservation.Time,
		reservation.Guests,
		reservation.SpecialRequests,
		string(reservation.Status),
	).Scan(&reservation.ID, &reservation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	return nil
}

// GetReservation loads one reservation by id.
func (r *Repository) GetReservation(ctx context.Context, id int64) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1;`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to get reservation %d", id))
	}

	return reservation, nil
}

// ListReservationsByUser returns the user's reservations, newest first.
func (r *Repository) ListReservationsByUser(ctx context.Context, userID int64) ([]models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE user_id = $1 ORDER BY created_at DESC;`

	reservations, err := r.queryReservations(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations of user %d: %w", userID, err)
	}

	return reservations, nil
}

// ListReservationsByRestaurant returns the restaurant's reservations, newest first.
func (r *Repository) ListReservationsByRestaurant(
	ctx context.Context,
	restaurantID int64,
) ([]models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE restaurant_id = $1 ORDER BY created_at DESC;`

	reservations, err := r.queryReservations(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations of restaurant %d: %w", restaurantID, err)
	}

	return reservations, nil
}

// SaveReservation writes the mutable lifecycle fields of an existing reservation.
func (r *Repository) SaveReservation(ctx context.Context, reservation *models.Reservation) error {
	query := `
		UPDATE reservations
		SET
			status = $1,
			rejection_reason = $2,
			visit_status = $3,
			visit_confirmed_at = $4,
			no_show_reason = $5,
			is_blacklisted = $6,
			blacklist_reason = $7
		WHERE
			id = $8;
	`

	var visit *string
	if reservation.VisitStatus != nil {
		v := string(*reservation.VisitStatus)
		visit = &v
	}

	tag, err := r.db.Exec(ctx, query,
		string(reservation.Status),
		reservation.RejectionReason,
		visit,
		reservation.VisitConfirmedAt,
		reservation.NoShowReason,
		reservation.IsBlacklisted,
		reservation.BlacklistReason,
		reservation.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to save reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to save reservation %d: %w", reservation.ID, ErrNotFound)
	}

	return nil
}

// UserNickname returns the display name registered for the user.
func (r *Repository) UserNickname(ctx context.Context, userID int64) (string, error) {
	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM users WHERE id = $1;`, userID).Scan(&name)
	if err != nil {
		return "", notFound(err, fmt.Sprintf("failed to get nickname of user %d", userID))
	}

	return name, nil
}

func (r *Repository) queryReservations(ctx context.Context, query string, args ...any) ([]models.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		reservation, errScan := scanReservation(rows)
		if errScan != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", errScan)
		}
		reservations = append(reservations, *reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return reservations, nil
}

func scanReservation(row pgx.Row) (*models.Reservation, error) {
	var (
		reservation models.Reservation
		status      string
		visit       *string
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.RestaurantID,
		&reservation.RestaurantName,
		&reservation.UserName,
		&reservation.UserPhone,
		&reservation.UserEmail,
		&reservation.Date,
		&reservation.Time,
		&reservation.Guests,
		&reservation.SpecialRequests,
		&status,
		&reservation.RejectionReason,
		&visit,
		&reservation.VisitConfirmedAt,
		&reservation.NoShowReason,
		&reservation.IsBlacklisted,
		&reservation.BlacklistReason,
		&reservation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.Status = models.ReservationStatus(status)
	if visit != nil {
		v := models.VisitStatus(*visit)
		reservation.VisitStatus = &v
	}

	return &reservation, nil
}
