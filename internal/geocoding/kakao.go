package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/UnknownOlympus/choprest/internal/models"
)

// KakaoBaseURL is the Kakao Local keyword search endpoint.
const KakaoBaseURL = "https://dapi.kakao.com/v2/local/search/keyword.json"

// KakaoProvider implements keyword place search using the Kakao Local API.
type KakaoProvider struct {
	client  HTTPClient   // HTTP client for making requests
	baseURL string       // Base URL for the Kakao API
	log     *slog.Logger // Logger for logging operations
}

// kakaoResponse is the part of the keyword search response we use.
type kakaoResponse struct {
	Documents []kakaoDocument `json:"documents"`
}

type kakaoDocument struct {
	PlaceName       string `json:"place_name"`
	X               string `json:"x"` // longitude
	Y               string `json:"y"` // latitude
	RoadAddressName string `json:"road_address_name"`
	AddressName     string `json:"address_name"`
	Phone           string `json:"phone"`
}

// NewKakaoProvider creates a Kakao provider with its own HTTP client.
func NewKakaoProvider(timeout time.Duration, log *slog.Logger) *KakaoProvider {
	return &KakaoProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: KakaoBaseURL,
		log:     log,
	}
}

// NewKakaoProviderWithClient allows injecting custom HTTP client and endpoint.
// An empty baseURL keeps the public endpoint.
func NewKakaoProviderWithClient(client HTTPClient, baseURL string, log *slog.Logger) *KakaoProvider {
	if baseURL == "" {
		baseURL = KakaoBaseURL
	}

	return &KakaoProvider{client: client, baseURL: baseURL, log: log}
}

// Search looks up the query and maps the first document to a place.
func (kp *KakaoProvider) Search(ctx context.Context, query, credential string) (*models.Place, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	reqURL, err := url.Parse(kp.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	params := reqURL.Query()
	params.Set("query", query)
	params.Set("size", "1")
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+credential)
	req.Header.Set("Accept", "application/json")

	resp, err := kp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusTooManyRequests:
		return nil, ErrQuotaExceeded
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		kp.log.ErrorContext(ctx, "Kakao API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("kakao API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result kakaoResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode kakao response: %w", err)
	}

	if len(result.Documents) == 0 {
		kp.log.DebugContext(ctx, "Kakao returned no documents", "query", query)
		return nil, nil
	}

	doc := result.Documents[0]
	kp.log.DebugContext(ctx, "Kakao found place", "query", query, "place", doc.PlaceName, "x", doc.X, "y", doc.Y)

	return &models.Place{
		Latitude:  ParseCoordinate(doc.Y),
		Longitude: ParseCoordinate(doc.X),
		Address:   firstNonBlank(doc.RoadAddressName, doc.AddressName),
		Phone:     optionalString(doc.Phone),
	}, nil
}
