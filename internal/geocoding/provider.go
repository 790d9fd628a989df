package geocoding

import (
	"context"
	"errors"
	"net/http"

	"github.com/UnknownOlympus/choprest/internal/models"
)

// Provider searches an external place API by keyword.
//
// Search returns the first matching place, or nil without an error when the provider answered but
// found nothing. ErrQuotaExceeded signals that the provider rejected the call for rate reasons;
// every other error is a transient provider failure the caller may retry.
type Provider interface {
	Search(ctx context.Context, query, credential string) (*models.Place, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Common provider errors.
var (
	ErrQuotaExceeded = errors.New("geocoding provider quota exceeded")
	ErrUnauthorized  = errors.New("geocoding provider rejected the API key")
	ErrEmptyQuery    = errors.New("geocoding query is empty")
)
