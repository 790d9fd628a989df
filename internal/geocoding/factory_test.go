package geocoding_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/choprest/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	logger := slog.Default()

	t.Run("create Kakao provider successfully", func(t *testing.T) {
		provider, err := geocoding.NewProvider(geocoding.ProviderConfig{
			Type:   geocoding.ProviderTypeKakao,
			Logger: logger,
		})

		require.NoError(t, err)
		_, ok := provider.(*geocoding.KakaoProvider)
		assert.True(t, ok, "expected provider to be *KakaoProvider")
	})

	t.Run("create Google provider successfully", func(t *testing.T) {
		provider, err := geocoding.NewProvider(geocoding.ProviderConfig{
			Type:   geocoding.ProviderTypeGoogle,
			Logger: logger,
		})

		require.NoError(t, err)
		_, ok := provider.(*geocoding.GoogleProvider)
		assert.True(t, ok, "expected provider to be *GoogleProvider")
	})

	t.Run("create Nominatim provider without logger", func(t *testing.T) {
		provider, err := geocoding.NewProvider(geocoding.ProviderConfig{
			Type: geocoding.ProviderTypeNominatim,
		})

		require.NoError(t, err)
		_, ok := provider.(*geocoding.NominatimProvider)
		assert.True(t, ok, "expected provider to be *NominatimProvider")
	})

	t.Run("unsupported provider type", func(t *testing.T) {
		provider, err := geocoding.NewProvider(geocoding.ProviderConfig{
			Type:   geocoding.ProviderType("mapbox"),
			Logger: logger,
		})

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "unsupported provider type: mapbox")
	})

	t.Run("empty provider type", func(t *testing.T) {
		provider, err := geocoding.NewProvider(geocoding.ProviderConfig{Logger: logger})

		require.Error(t, err)
		require.Nil(t, provider)
	})
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{name: "plain", input: "37.4979", want: ptr(37.4979)},
		{name: "padded", input: " 127.0276 ", want: ptr(127.0276)},
		{name: "negative", input: "-122.08", want: ptr(-122.08)},
		{name: "blank", input: "  "},
		{name: "garbage", input: "abc"},
		{name: "zero is a value", input: "0", want: ptr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geocoding.ParseCoordinate(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func ptr(v float64) *float64 { return &v }
