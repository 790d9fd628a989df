package models

import "time"

// NotificationType names what a notification is about.
type NotificationType string

const NotificationReservationApproved NotificationType = "RESERVATION_APPROVED"

// Notification is an in-app message addressed to one user.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	RelatedID *int64           `json:"relatedId,omitempty"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}
