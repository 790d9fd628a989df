package service

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/repository"
)

// NotificationService delivers in-app notifications.
type NotificationService struct {
	log   *slog.Logger
	store repository.NotificationStore
}

func NewNotificationService(log *slog.Logger, store repository.NotificationStore) *NotificationService {
	return &NotificationService{log: log, store: store}
}

// List returns the user's notifications, newest first.
func (ns *NotificationService) List(ctx context.Context, userID int64) ([]models.Notification, error) {
	return ns.store.ListNotifications(ctx, userID, false)
}

func (ns *NotificationService) Unread(ctx context.Context, userID int64) ([]models.Notification, error) {
	return ns.store.ListNotifications(ctx, userID, true)
}

func (ns *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return ns.store.CountUnreadNotifications(ctx, userID)
}

func (ns *NotificationService) MarkRead(ctx context.Context, id int64) error {
	return ns.store.MarkNotificationRead(ctx, id)
}

// MarkAllRead marks every notification of the user read and returns how many changed.
func (ns *NotificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return ns.store.MarkAllNotificationsRead(ctx, userID)
}

// NotifyReservationApproved tells the guest their booking was accepted.
func (ns *NotificationService) NotifyReservationApproved(ctx context.Context, reservation models.Reservation) error {
	id := reservation.ID
	notification := models.Notification{
		UserID:    reservation.UserID,
		Type:      models.NotificationReservationApproved,
		Title:     "예약이 승인되었습니다",
		Message:   reservation.RestaurantName + " 예약이 승인되었습니다!",
		RelatedID: &id,
	}

	if err := ns.store.CreateNotification(ctx, &notification); err != nil {
		return err
	}

	ns.log.DebugContext(ctx, "Notification sent", "user", reservation.UserID, "type", notification.Type)

	return nil
}
