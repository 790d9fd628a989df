package geocoding

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/UnknownOlympus/choprest/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider searches places through the Google Maps Places text search.
// One Maps client is kept per API key so that rotated keys are honored.
type GoogleProvider struct {
	newClient GoogleClientFactory // builds a client for a key
	log       *slog.Logger        // log is the logger for logging operations

	mu      sync.Mutex
	clients map[string]GoogleAPIClient
}

// GoogleAPIClient is the subset of the Maps client used by the provider.
type GoogleAPIClient interface {
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
}

// GoogleClientFactory creates a Maps client for one API key.
type GoogleClientFactory func(apiKey string) (GoogleAPIClient, error)

// NewGoogleProvider initializes a new GoogleProvider that builds clients with the given factory.
func NewGoogleProvider(factory GoogleClientFactory, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{
		newClient: factory,
		log:       log,
		clients:   make(map[string]GoogleAPIClient),
	}
}

// MapsClientFactory returns a factory creating real Maps clients with the given timeout.
func MapsClientFactory(timeout time.Duration) GoogleClientFactory {
	return func(apiKey string) (GoogleAPIClient, error) {
		client, err := maps.NewClient(
			maps.WithAPIKey(apiKey),
			maps.WithHTTPClient(&http.Client{Timeout: timeout}),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
		}

		return client, nil
	}
}

// Search runs a text search and maps the first result. Google does not return phone numbers
// from text search, so Phone is always nil.
func (gp *GoogleProvider) Search(ctx context.Context, query, credential string) (*models.Place, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	client, err := gp.client(credential)
	if err != nil {
		return nil, err
	}

	gp.log.DebugContext(ctx, "Searching using Google Maps", "query", query)

	resp, err := client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		if strings.Contains(err.Error(), "OVER_QUERY_LIMIT") {
			return nil, fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
		}
		if strings.Contains(err.Error(), "REQUEST_DENIED") {
			return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("failed to search place: %w", err)
	}

	if len(resp.Results) == 0 {
		return nil, nil
	}

	result := resp.Results[0]
	lat, lng := result.Geometry.Location.Lat, result.Geometry.Location.Lng

	return &models.Place{
		Latitude:  &lat,
		Longitude: &lng,
		Address:   strings.TrimSpace(result.FormattedAddress),
	}, nil
}

func (gp *GoogleProvider) client(apiKey string) (GoogleAPIClient, error) {
	gp.mu.Lock()
	defer gp.mu.Unlock()

	if client, ok := gp.clients[apiKey]; ok {
		return client, nil
	}

	client, err := gp.newClient(apiKey)
	if err != nil {
		return nil, err
	}
	gp.clients[apiKey] = client

	return client, nil
}
