package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/choprest/internal/models"
)

const notificationColumns = `id, user_id, type, title, message, related_id, is_read, created_at`

// CreateNotification inserts the notification and fills in its generated id and creation time.
func (r *Repository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (user_id, type, title, message, related_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	err := r.db.QueryRow(ctx, query,
		notification.UserID,
		string(notification.Type),
		notification.Title,
		notification.Message,
		notification.RelatedID,
	).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

// ListNotifications returns the user's notifications, newest first.
func (r *Repository) ListNotifications(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE user_id = $1 AND (NOT $2 OR NOT is_read)
		ORDER BY created_at DESC, id DESC;`

	rows, err := r.db.Query(ctx, query, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications of user %d: %w", userID, err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var (
			notification models.Notification
			kind         string
		)
		if err = rows.Scan(
			&notification.ID,
			&notification.UserID,
			&kind,
			&notification.Title,
			&notification.Message,
			&notification.RelatedID,
			&notification.IsRead,
			&notification.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notification.Type = models.NotificationType(kind)
		notifications = append(notifications, notification)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return notifications, nil
}

func (r *Repository) CountUnreadNotifications(ctx context.Context, userID int64) (int64, error) {
	var count int64
	query := `SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read;`

	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications of user %d: %w", userID, err)
	}

	return count, nil
}

// MarkNotificationRead marks one notification read. A missing notification yields ErrNotFound.
func (r *Repository) MarkNotificationRead(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification %d read: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to mark notification %d read: %w", id, ErrNotFound)
	}

	return nil
}

// MarkAllNotificationsRead marks every unread notification of the user read and returns how many changed.
func (r *Repository) MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read;`

	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications of user %d read: %w", userID, err)
	}

	return tag.RowsAffected(), nil
}
