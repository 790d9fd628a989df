package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `event_id, store_id, event_name, event_description, event_type, discount_rate,
	discount_amount, min_order_amount, image_url, thumbnail_url, start_date, end_date, is_active,
	is_popular, terms_and_conditions, sort_order, created_at`

// ListEvents returns the events of a store in display order.
func (r *Repository) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		WHERE store_id = $1
			AND ($2 = '' OR event_type = $2)
			AND (NOT $3 OR is_popular)
			AND ($4::timestamptz IS NULL OR (is_active AND start_date <= $4 AND end_date >= $4))
		ORDER BY sort_order, event_id;`

	events, err := r.queryEvents(ctx, query, filter.StoreID, string(filter.Type), filter.Popular, filter.ActiveAt)
	if err != nil {
		return nil, fmt.Errorf("failed to list events of store %d: %w", filter.StoreID, err)
	}

	return events, nil
}

// EventTypes returns the distinct event types a store has used.
func (r *Repository) EventTypes(ctx context.Context, storeID int64) ([]string, error) {
	query := `SELECT DISTINCT event_type FROM events WHERE store_id = $1 ORDER BY event_type;`

	types, err := r.queryStrings(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event types of store %d: %w", storeID, err)
	}

	return types, nil
}

func (r *Repository) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`

	var event models.Event
	if err := scanEvent(r.db.QueryRow(ctx, query, id), &event); err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to get event %d", id))
	}

	return &event, nil
}

func scanEvent(row pgx.Row, event *models.Event) error {
	var eventType string
	err := row.Scan(
		&event.ID,
		&event.StoreID,
		&event.Name,
		&event.Description,
		&eventType,
		&event.DiscountRate,
		&event.DiscountAmount,
		&event.MinOrderAmount,
		&event.ImageURL,
		&event.ThumbnailURL,
		&event.StartDate,
		&event.EndDate,
		&event.IsActive,
		&event.IsPopular,
		&event.TermsAndConditions,
		&event.SortOrder,
		&event.CreatedAt,
	)
	event.Type = models.EventType(eventType)

	return err
}

func (r *Repository) queryEvents(ctx context.Context, query string, args ...any) ([]models.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err = scanEvent(rows, &event); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return events, nil
}
