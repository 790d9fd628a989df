package api

import (
	"context"
	"net/http"

	"github.com/UnknownOlympus/choprest/internal/models"
)

func (h *Handler) notifications(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context, userID int64) ([]models.Notification, error),
) {
	userID, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get notifications", err)
		return
	}

	notifications, err := list(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "Failed to get notifications", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(notifications))
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	h.notifications(w, r, h.Notifications.List)
}

func (h *Handler) unreadNotifications(w http.ResponseWriter, r *http.Request) {
	h.notifications(w, r, h.Notifications.Unread)
}

func (h *Handler) unreadNotificationCount(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to count notifications", err)
		return
	}

	count, err := h.Notifications.UnreadCount(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "Failed to count notifications", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, envelope{"count": count})
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to mark notification read", err)
		return
	}

	if err = h.Notifications.MarkRead(r.Context(), id); err != nil {
		h.fail(w, r, "Failed to mark notification read", err)
		return
	}

	h.respond(w, r, "Notification marked read", nil)
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to mark notifications read", err)
		return
	}

	updated, err := h.Notifications.MarkAllRead(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "Failed to mark notifications read", err)
		return
	}

	h.respond(w, r, "Notifications marked read", envelope{"updated": updated})
}
