package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/choprest/internal/repository"
	"github.com/UnknownOlympus/choprest/internal/service"
	"github.com/go-chi/chi/v5"
)

// envelope is the JSON body of every command response.
type envelope map[string]any

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write reply", "error", err)
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, message string, fields envelope) {
	body := envelope{"success": true, "message": message}
	for key, value := range fields {
		body[key] = value
	}
	h.writeJSON(w, r, http.StatusOK, body)
}

// fail maps err to a status code and writes the error envelope.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.failWith(w, r, message, err, nil)
}

// failWith is fail with extra fields in the error envelope.
func (h *Handler) failWith(w http.ResponseWriter, r *http.Request, message string, err error, fields envelope) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), message, "path", r.URL.Path, "error", err)
	} else {
		h.log.DebugContext(r.Context(), message, "path", r.URL.Path, "error", err)
	}

	body := envelope{"success": false, "message": message + ": " + err.Error()}
	for key, value := range fields {
		body[key] = value
	}
	h.writeJSON(w, r, status, body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInvalidReservation),
		errors.Is(err, service.ErrInvalidBlacklistEntry),
		errors.Is(err, service.ErrInvalidMenu),
		errors.Is(err, service.ErrInvalidReview),
		errors.Is(err, service.ErrInvalidMessage):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrBlacklisted), errors.Is(err, service.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, service.ErrAlreadyBlacklisted), errors.Is(err, service.ErrPassInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", errBadRequest, name)
	}

	return id, nil
}

func queryID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", errBadRequest, name)
	}

	return id, nil
}

// pageParams reads page and size query parameters. Missing or malformed values fall back to
// the defaults.
func pageParams(r *http.Request, defaultSize int) service.Page {
	page := service.Page{Size: defaultSize}
	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		page.Number = n
	}
	if n, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil {
		page.Size = n
	}

	return page.Normalize()
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body: %w", errBadRequest, err)
	}

	return nil
}
