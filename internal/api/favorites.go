package api

import (
	"net/http"
)

func favoriteIDs(r *http.Request) (int64, int64, error) {
	userID, err := pathID(r, "userID")
	if err != nil {
		return 0, 0, err
	}
	restaurantID, err := pathID(r, "restaurantID")
	if err != nil {
		return 0, 0, err
	}

	return userID, restaurantID, nil
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		h.fail(w, r, "Failed to list favorites", err)
		return
	}

	restaurants, err := h.Favorites.List(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "Failed to list favorites", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(restaurants))
}

func (h *Handler) isFavorite(w http.ResponseWriter, r *http.Request) {
	userID, restaurantID, err := favoriteIDs(r)
	if err != nil {
		h.fail(w, r, "Failed to check favorite", err)
		return
	}

	favorite, err := h.Favorites.IsFavorite(r.Context(), userID, restaurantID)
	if err != nil {
		h.fail(w, r, "Failed to check favorite", err)
		return
	}

	h.respond(w, r, "Favorite checked", envelope{"isFavorite": favorite})
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	userID, restaurantID, err := favoriteIDs(r)
	if err != nil {
		h.fail(w, r, "Failed to add favorite", err)
		return
	}

	if err = h.Favorites.Add(r.Context(), userID, restaurantID); err != nil {
		h.fail(w, r, "Failed to add favorite", err)
		return
	}

	h.respond(w, r, "Favorite added", envelope{"isFavorite": true})
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	userID, restaurantID, err := favoriteIDs(r)
	if err != nil {
		h.fail(w, r, "Failed to remove favorite", err)
		return
	}

	if err = h.Favorites.Remove(r.Context(), userID, restaurantID); err != nil {
		h.fail(w, r, "Failed to remove favorite", err)
		return
	}

	h.respond(w, r, "Favorite removed", envelope{"isFavorite": false})
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, restaurantID, err := favoriteIDs(r)
	if err != nil {
		h.fail(w, r, "Failed to toggle favorite", err)
		return
	}

	favorite, err := h.Favorites.Toggle(r.Context(), userID, restaurantID)
	if err != nil {
		h.fail(w, r, "Failed to toggle favorite", err)
		return
	}

	message := "Favorite removed"
	if favorite {
		message = "Favorite added"
	}
	h.respond(w, r, message, envelope{"isFavorite": favorite})
}
