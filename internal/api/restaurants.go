package api

import (
	"net/http"

	"github.com/UnknownOlympus/choprest/internal/service"
)

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	restaurants, err := h.Restaurants.List(r.Context(), query.Get("region"), query.Get("keyword"),
		pageParams(r, service.DefaultPageSize))
	if err != nil {
		h.fail(w, r, "Failed to list restaurants", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(restaurants))
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get restaurant", err)
		return
	}

	restaurant, err := h.Restaurants.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get restaurant", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, restaurant)
}
