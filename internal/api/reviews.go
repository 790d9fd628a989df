package api

import (
	"net/http"

	"github.com/UnknownOlympus/choprest/internal/models"
)

type commentRequest struct {
	Comment string `json:"comment"`
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := decode(r, &review); err != nil {
		h.fail(w, r, "Failed to create review", err)
		return
	}

	created, err := h.Reviews.Create(r.Context(), review)
	if err != nil {
		h.fail(w, r, "Failed to create review", err)
		return
	}

	h.respond(w, r, "Review created", envelope{"review": created})
}

func (h *Handler) restaurantReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get reviews", err)
		return
	}

	reviews, err := h.Reviews.ListByRestaurant(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get reviews", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(reviews))
}

func (h *Handler) userReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get reviews", err)
		return
	}

	reviews, err := h.Reviews.ListByUser(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get reviews", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(reviews))
}

func (h *Handler) commentReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to add owner comment", err)
		return
	}

	var request commentRequest
	if err = decode(r, &request); err != nil {
		h.fail(w, r, "Failed to add owner comment", err)
		return
	}

	review, err := h.Reviews.Comment(r.Context(), id, request.Comment)
	if err != nil {
		h.fail(w, r, "Failed to add owner comment", err)
		return
	}

	h.respond(w, r, "Owner comment saved", envelope{"review": review})
}
