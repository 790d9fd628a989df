package api

import (
	"fmt"
	"net/http"

	"github.com/UnknownOlympus/choprest/internal/models"
)

func (h *Handler) events(w http.ResponseWriter, r *http.Request, filter models.EventFilter) {
	storeID, err := queryID(r, "storeId")
	if err != nil {
		h.fail(w, r, "Failed to get events", err)
		return
	}
	filter.StoreID = storeID

	events, err := h.Events.List(r.Context(), filter)
	if err != nil {
		h.fail(w, r, "Failed to get events", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(events))
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	h.events(w, r, models.EventFilter{})
}

func (h *Handler) popularEvents(w http.ResponseWriter, r *http.Request) {
	h.events(w, r, models.EventFilter{Popular: true})
}

func (h *Handler) eventsByType(w http.ResponseWriter, r *http.Request) {
	eventType, ok := models.ParseEventType(r.URL.Query().Get("eventType"))
	if !ok {
		h.fail(w, r, "Failed to get events", fmt.Errorf("%w: unknown event type", errBadRequest))
		return
	}

	h.events(w, r, models.EventFilter{Type: eventType})
}

func (h *Handler) activeEvents(w http.ResponseWriter, r *http.Request) {
	storeID, err := queryID(r, "storeId")
	if err != nil {
		h.fail(w, r, "Failed to get active events", err)
		return
	}

	events, err := h.Events.Active(r.Context(), storeID)
	if err != nil {
		h.fail(w, r, "Failed to get active events", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(events))
}

func (h *Handler) eventTypes(w http.ResponseWriter, r *http.Request) {
	storeID, err := queryID(r, "storeId")
	if err != nil {
		h.fail(w, r, "Failed to get event types", err)
		return
	}

	types, err := h.Events.Types(r.Context(), storeID)
	if err != nil {
		h.fail(w, r, "Failed to get event types", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(types))
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to get event", err)
		return
	}

	event, err := h.Events.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "Failed to get event", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, event)
}
