package api

import (
	"context"
	"net/http"

	"github.com/UnknownOlympus/choprest/internal/models"
)

const batchPageSize = 50

// passContext detaches a location update from the request, so a client that disconnects
// does not stop the pass. The pass is still cancelled when the server shuts down.
func (h *Handler) passContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	if h.Lifetime == nil {
		return ctx, cancel
	}

	stop := context.AfterFunc(h.Lifetime, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (h *Handler) updateLocations(w http.ResponseWriter, r *http.Request) {
	h.log.InfoContext(r.Context(), "Starting location update via API")

	ctx, cancel := h.passContext(r)
	defer cancel()

	result, err := h.Updater.UpdateAll(ctx)
	if err != nil {
		h.failWith(w, r, "Batch location update failed", err, envelope{"result": result})
		return
	}

	h.respond(w, r, "Batch location update completed", envelope{"result": result})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	status, err := h.Updater.Status(r.Context())
	if err != nil {
		h.fail(w, r, "Failed to get status", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, status)
}

func (h *Handler) restaurantsWithoutLocation(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.WithoutLocation(r.Context(), pageParams(r, batchPageSize))
	if err != nil {
		h.fail(w, r, "Failed to get restaurants without location", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(restaurants))
}

func (h *Handler) restaurantsWithLocation(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.WithLocation(r.Context(), pageParams(r, batchPageSize))
	if err != nil {
		h.fail(w, r, "Failed to get restaurants with location", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, nonNil(restaurants))
}

func (h *Handler) testAPI(w http.ResponseWriter, r *http.Request) {
	checks, err := h.Updater.TestKeys(r.Context())
	if err != nil {
		h.fail(w, r, "API test failed", err)
		return
	}

	working := true
	for _, check := range checks {
		working = working && check.OK
	}

	message := "API keys are working"
	if !working {
		message = "API keys failed"
	}

	h.writeJSON(w, r, http.StatusOK, envelope{"success": working, "message": message, "keys": checks})
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "Failed to update restaurant location", err)
		return
	}

	ctx, cancel := h.passContext(r)
	defer cancel()

	outcome, restaurant, err := h.Updater.UpdateByID(ctx, id)
	if err != nil {
		h.fail(w, r, "Failed to update restaurant location", err)
		return
	}

	updated := outcome.Kind == models.OutcomeUpdated
	message := "No location found for this restaurant"
	switch outcome.Kind {
	case models.OutcomeUpdated:
		message = "Location updated successfully"
	case models.OutcomeSkipped:
		message = "Restaurant already has location"
	case models.OutcomeFailed:
		message = "Location update failed: " + outcome.Reason
	case models.OutcomeInterrupted:
		message = "Location update interrupted by shutdown"
	}

	h.writeJSON(w, r, http.StatusOK, envelope{
		"success":    updated,
		"message":    message,
		"outcome":    outcome.Kind,
		"restaurant": restaurant,
	})
}

// nonNil keeps empty listings encoded as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
