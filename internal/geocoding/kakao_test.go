package geocoding_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UnknownOlympus/choprest/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKakaoProvider_Search(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()

	t.Run("successful search", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v2/local/search/keyword.json", r.URL.Path)
			assert.Equal(t, "Foo Gangnam", r.URL.Query().Get("query"))
			assert.Equal(t, "1", r.URL.Query().Get("size"))
			assert.Equal(t, "KakaoAK k1", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"documents":[{"place_name":"Foo","x":"127.0276","y":"37.4979",` +
				`"road_address_name":"서울 강남구 강남대로 396","address_name":"서울 강남구 역삼동 825",` +
				`"phone":"02-123-4567"}]}`))
		}))
		defer server.Close()

		provider := geocoding.NewKakaoProviderWithClient(
			server.Client(), server.URL+"/v2/local/search/keyword.json", logger,
		)
		place, err := provider.Search(ctx, "Foo Gangnam", "k1")

		require.NoError(t, err)
		require.NotNil(t, place)
		require.NotNil(t, place.Latitude)
		require.NotNil(t, place.Longitude)
		assert.InEpsilon(t, 37.4979, *place.Latitude, 0.0001)
		assert.InEpsilon(t, 127.0276, *place.Longitude, 0.0001)
		assert.Equal(t, "서울 강남구 강남대로 396", place.Address)
		require.NotNil(t, place.Phone)
		assert.Equal(t, "02-123-4567", *place.Phone)
	})

	t.Run("lot address when road address is missing", func(t *testing.T) {
		client := respond(http.StatusOK,
			`{"documents":[{"x":"127.1","y":"37.1","road_address_name":"","address_name":"역삼동 825","phone":""}]}`)

		provider := geocoding.NewKakaoProviderWithClient(client, "", logger)
		place, err := provider.Search(ctx, "Foo", "k1")

		require.NoError(t, err)
		require.NotNil(t, place)
		assert.Equal(t, "역삼동 825", place.Address)
		assert.Nil(t, place.Phone)
	})

	t.Run("unparsable coordinates become nil", func(t *testing.T) {
		client := respond(http.StatusOK,
			`{"documents":[{"x":"not-a-number","y":"","road_address_name":"road"}]}`)

		provider := geocoding.NewKakaoProviderWithClient(client, "", logger)
		place, err := provider.Search(ctx, "Foo", "k1")

		require.NoError(t, err)
		require.NotNil(t, place)
		assert.Nil(t, place.Latitude)
		assert.Nil(t, place.Longitude)
		assert.Equal(t, "road", place.Address)
	})

	t.Run("no documents", func(t *testing.T) {
		provider := geocoding.NewKakaoProviderWithClient(respond(http.StatusOK, `{"documents":[]}`), "", logger)
		place, err := provider.Search(ctx, "Nowhere", "k1")

		require.NoError(t, err)
		assert.Nil(t, place)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		provider := geocoding.NewKakaoProviderWithClient(respond(http.StatusTooManyRequests, `{}`), "", logger)
		place, err := provider.Search(ctx, "Foo", "k1")

		require.ErrorIs(t, err, geocoding.ErrQuotaExceeded)
		assert.Nil(t, place)
	})

	t.Run("unauthorized", func(t *testing.T) {
		provider := geocoding.NewKakaoProviderWithClient(respond(http.StatusUnauthorized, `{}`), "", logger)
		place, err := provider.Search(ctx, "Foo", "bad")

		require.ErrorIs(t, err, geocoding.ErrUnauthorized)
		assert.Nil(t, place)
	})

	t.Run("server error", func(t *testing.T) {
		provider := geocoding.NewKakaoProviderWithClient(respond(http.StatusBadGateway, `upstream`), "", logger)
		place, err := provider.Search(ctx, "Foo", "k1")

		require.Error(t, err)
		assert.Nil(t, place)
		assert.Contains(t, err.Error(), "kakao API returned status 502: upstream")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		provider := geocoding.NewKakaoProviderWithClient(respond(http.StatusOK, `not json`), "", logger)
		place, err := provider.Search(ctx, "Foo", "k1")

		require.Error(t, err)
		assert.Nil(t, place)
		assert.Contains(t, err.Error(), "failed to decode kakao response")
	})

	t.Run("transport error", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, assert.AnError
			},
		}

		provider := geocoding.NewKakaoProviderWithClient(client, "", logger)
		place, err := provider.Search(ctx, "Foo", "k1")

		require.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, place)
		assert.Contains(t, err.Error(), "failed to execute search request")
	})

	t.Run("empty query", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				t.Fatal("HTTP client should not be called for an empty query")
				return nil, nil
			},
		}

		provider := geocoding.NewKakaoProviderWithClient(client, "", logger)
		place, err := provider.Search(ctx, "  ", "k1")

		require.ErrorIs(t, err, geocoding.ErrEmptyQuery)
		assert.Nil(t, place)
	})

	t.Run("context cancellation", func(t *testing.T) {
		newCtx, cancel := context.WithCancel(context.Background())
		cancel()

		client := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				return nil, req.Context().Err()
			},
		}

		provider := geocoding.NewKakaoProviderWithClient(client, "", logger)
		place, err := provider.Search(newCtx, "Foo", "k1")

		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, place)
	})
}
