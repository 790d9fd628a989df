package geocoding

import (
	"fmt"
	"log/slog"
	"time"
)

// ProviderType represents the type of geocoding provider.
type ProviderType string

const (
	// ProviderTypeKakao represents the Kakao Local keyword search.
	ProviderTypeKakao ProviderType = "kakao"
	// ProviderTypeGoogle represents Google Maps places text search.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeNominatim represents OpenStreetMap Nominatim geocoding provider.
	ProviderTypeNominatim ProviderType = "nominatim"
)

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type    ProviderType  // Type of provider to create
	Timeout time.Duration // HTTP timeout for provider calls
	Logger  *slog.Logger  // Logger for the provider
}

// NewProvider creates a geocoding provider based on the provided configuration.
// API keys are not part of the configuration: they are rotated per call by the caller.
//
// Supported provider types:
// - "kakao": Kakao Local keyword search (default)
// - "google": Google Maps places text search
// - "nominatim": OpenStreetMap Nominatim API (free, keys ignored)
//
// Returns an error if the provider type is unsupported.
func NewProvider(config ProviderConfig) (Provider, error) {
	const defaultTimeout = 10 * time.Second
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	switch config.Type {
	case ProviderTypeKakao:
		return NewKakaoProvider(config.Timeout, config.Logger), nil
	case ProviderTypeGoogle:
		return NewGoogleProvider(MapsClientFactory(config.Timeout), config.Logger), nil
	case ProviderTypeNominatim:
		return NewNominatimProvider(config.Timeout, config.Logger), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}
