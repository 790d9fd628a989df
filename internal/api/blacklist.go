package api

import (
	"net/http"

	"github.com/UnknownOlympus/choprest/internal/models"
)

func (h *Handler) addBlacklist(w http.ResponseWriter, r *http.Request) {
	var entry models.BlacklistEntry
	if err := decode(r, &entry); err != nil {
		h.fail(w, r, "Failed to add to blacklist", err)
		return
	}

	created, err := h.Blacklist.Add(r.Context(), entry)
	if err != nil {
		h.fail(w, r, "Failed to add to blacklist", err)
		return
	}

	h.respond(w, r, "User added to blacklist", envelope{"blacklist": created})
}

func (h *Handler) checkBlacklist(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		h.fail(w, r, "Failed to check blacklist", err)
		return
	}
	restaurantID, err := queryID(r, "restaurantId")
	if err != nil {
		h.fail(w, r, "Failed to check blacklist", err)
		return
	}

	blacklisted, err := h.Blacklist.IsBlacklisted(r.Context(), userID, restaurantID)
	if err != nil {
		h.fail(w, r, "Failed to check blacklist", err)
		return
	}

	h.respond(w, r, "Blacklist checked", envelope{"isBlacklisted": blacklisted})
}

func (h *Handler) restaurantBlacklist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get blacklist", err)
		return
	}

	entries, err := h.Blacklist.ListByRestaurant(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get blacklist", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(entries))
}

func (h *Handler) userBlacklist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get blacklist", err)
		return
	}

	entries, err := h.Blacklist.ListByUser(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get blacklist", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(entries))
}

func (h *Handler) removeBlacklist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to remove from blacklist", err)
		return
	}

	if err = h.Blacklist.Remove(r.Context(), id); err != nil {
		h.fail(w, r, "Failed to remove from blacklist", err)
		return
	}

	h.respond(w, r, "User removed from blacklist", nil)
}
