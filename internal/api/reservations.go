package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/UnknownOlympus/choprest/internal/models"
)

type reasonRequest struct {
	Reason string `json:"reason"`
}

type visitRequest struct {
	VisitStatus string `json:"visitStatus"`
	Reason      string `json:"reason"`
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var request models.Reservation
	if err := decode(r, &request); err != nil {
		h.fail(w, r, "Failed to create reservation", err)
		return
	}

	reservation, err := h.Reservations.Create(r.Context(), request)
	if err != nil {
		h.fail(w, r, "Failed to create reservation", err)
		return
	}

	h.respond(w, r, "Reservation created", envelope{"reservation": reservation})
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get reservation", err)
		return
	}

	reservation, err := h.Reservations.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get reservation", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, reservation)
}

func (h *Handler) userReservations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get reservations", err)
		return
	}

	reservations, err := h.Reservations.ListByUser(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get reservations", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(reservations))
}

func (h *Handler) restaurantReservations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get reservations", err)
		return
	}

	reservations, err := h.Reservations.ListByRestaurant(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get reservations", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(reservations))
}

func (h *Handler) approveReservation(w http.ResponseWriter, r *http.Request) {
	h.changeReservation(w, r, "Reservation approved", h.Reservations.Approve)
}

func (h *Handler) rejectReservation(w http.ResponseWriter, r *http.Request) {
	h.changeReservationWithReason(w, r, "Reservation rejected", h.Reservations.Reject)
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	h.changeReservation(w, r, "Reservation cancelled", h.Reservations.Cancel)
}

func (h *Handler) approveCancellation(w http.ResponseWriter, r *http.Request) {
	h.changeReservation(w, r, "Cancellation approved", h.Reservations.ApproveCancellation)
}

func (h *Handler) rejectCancellation(w http.ResponseWriter, r *http.Request) {
	h.changeReservationWithReason(w, r, "Cancellation rejected", h.Reservations.RejectCancellation)
}

func (h *Handler) updateVisit(w http.ResponseWriter, r *http.Request) {
	var request visitRequest
	if err := decode(r, &request); err != nil {
		h.fail(w, r, "Failed to update visit status", err)
		return
	}

	visit, ok := models.ParseVisitStatus(request.VisitStatus)
	if !ok {
		h.fail(w, r, "Failed to update visit status",
			fmt.Errorf("%w: unknown visit status %q", errBadRequest, request.VisitStatus))
		return
	}

	h.changeReservation(w, r, "Visit status updated", func(ctx context.Context, id int64) (*models.Reservation, error) {
		return h.Reservations.UpdateVisit(ctx, id, visit, request.Reason)
	})
}

func (h *Handler) changeReservationWithReason(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	change func(ctx context.Context, id int64, reason string) (*models.Reservation, error),
) {
	var request reasonRequest
	if r.ContentLength != 0 {
		if err := decode(r, &request); err != nil {
			h.fail(w, r, "Failed to update reservation", err)
			return
		}
	}

	h.changeReservation(w, r, message, func(ctx context.Context, id int64) (*models.Reservation, error) {
		return change(ctx, id, request.Reason)
	})
}

func (h *Handler) changeReservation(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	change func(ctx context.Context, id int64) (*models.Reservation, error),
) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to update reservation", err)
		return
	}

	reservation, err := change(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to update reservation", err)
		return
	}

	h.respond(w, r, message, envelope{"reservation": reservation})
}
