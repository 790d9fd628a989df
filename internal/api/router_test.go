package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/UnknownOlympus/choprest/internal/api"
	"github.com/UnknownOlympus/choprest/internal/metrics"
	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/repository"
	"github.com/UnknownOlympus/choprest/internal/service"
	"github.com/UnknownOlympus/choprest/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router        http.Handler
	db            *mocks.Pinger
	updater       *mocks.LocationUpdater
	restaurants   *mocks.Restaurants
	favorites     *mocks.Favorites
	blacklist     *mocks.Blacklist
	reservations  *mocks.Reservations
	menus         *mocks.Menus
	events        *mocks.Events
	reviews       *mocks.Reviews
	chat          *mocks.Chat
	notifications *mocks.Notifications
	metrics       *metrics.Metrics
	shutdown      context.CancelFunc
}

func newFixture(t *testing.T, rps float64, burst int) *fixture {
	t.Helper()

	reg := prometheus.NewRegistry()
	lifetime, shutdown := context.WithCancel(context.Background())
	t.Cleanup(shutdown)
	fx := &fixture{
		db:            mocks.NewPinger(t),
		updater:       mocks.NewLocationUpdater(t),
		restaurants:   mocks.NewRestaurants(t),
		favorites:     mocks.NewFavorites(t),
		blacklist:     mocks.NewBlacklist(t),
		reservations:  mocks.NewReservations(t),
		menus:         mocks.NewMenus(t),
		events:        mocks.NewEvents(t),
		reviews:       mocks.NewReviews(t),
		chat:          mocks.NewChat(t),
		notifications: mocks.NewNotifications(t),
		metrics:       metrics.NewMetrics(reg),
		shutdown:      shutdown,
	}
	fx.router = api.NewRouter(api.Deps{
		Log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:       fx.metrics,
		Gatherer:      reg,
		DB:            fx.db,
		Updater:       fx.updater,
		Restaurants:   fx.restaurants,
		Favorites:     fx.favorites,
		Blacklist:     fx.blacklist,
		Reservations:  fx.reservations,
		Menus:         fx.menus,
		Events:        fx.events,
		Reviews:       fx.reviews,
		Chat:          fx.chat,
		Notifications: fx.notifications,
		RPS:           rps,
		Burst:         burst,
		Lifetime:      lifetime,
	})

	return fx
}

func (fx *fixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") &&
		strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}

	return rec, decoded
}

func ptr[T any](v T) *T {
	return &v
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("database reachable", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.db.On("Ping", mock.Anything).Return(nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.db.On("Ping", mock.Anything).Return(assert.AnError).Once()

		rec, _ := fx.do(t, http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "DB ping failed", rec.Body.String())
	})
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, 0, 0)
	fx.updater.On("Status", mock.Anything).Return(models.NewLocationStatus(4, 1), nil).Once()

	rec, _ := fx.do(t, http.MethodGet, "/api/batch/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.HTTPRequests.WithLabelValues("/api/batch/status", "200")), 0)

	rec, _ = fx.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "choprest_http_requests_total")
}

func TestClientLimiting(t *testing.T) {
	t.Parallel()
	fx := newFixture(t, 1, 1)
	fx.updater.On("Status", mock.Anything).Return(models.NewLocationStatus(0, 0), nil).Once()

	rec, _ := fx.do(t, http.MethodGet, "/api/batch/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := fx.do(t, http.MethodGet, "/api/batch/status", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, false, body["success"])

	// Another client has its own budget.
	fx.updater.On("Status", mock.Anything).Return(models.NewLocationStatus(0, 0), nil).Once()
	req := httptest.NewRequest(http.MethodGet, "/api/batch/status", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	other := httptest.NewRecorder()
	fx.router.ServeHTTP(other, req)
	assert.Equal(t, http.StatusOK, other.Code)

	// Health checks are never limited.
	fx.db.On("Ping", mock.Anything).Return(nil).Twice()
	for range 2 {
		rec, _ = fx.do(t, http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestBatchEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("update locations", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.updater.On("UpdateAll", mock.Anything).
			Return(models.BatchResult{RunID: "run-1", Total: 3, Success: 2, Skipped: 1}, nil).Once()

		rec, body := fx.do(t, http.MethodPost, "/api/batch/update-locations", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Batch location update completed", body["message"])
		result, ok := body["result"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 3, result["total"], 0)
		assert.InDelta(t, 2, result["success"], 0)
		assert.InDelta(t, 1, result["skipped"], 0)
	})

	t.Run("update locations while a pass runs", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.updater.On("UpdateAll", mock.Anything).Return(models.BatchResult{}, service.ErrPassInProgress).Once()

		rec, body := fx.do(t, http.MethodPost, "/api/batch/update-locations", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["message"], "already in progress")
	})

	t.Run("client disconnect does not stop the pass", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
		fx.updater.On("UpdateAll", live).Return(models.BatchResult{RunID: "run-2", Total: 1, Success: 1}, nil).Once()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/api/batch/update-locations", nil)
		rec := httptest.NewRecorder()
		fx.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":1`)
	})

	t.Run("shutdown interrupts the pass with a partial result", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		partial := models.BatchResult{RunID: "run-3", Total: 5, Success: 2, Failed: 1}
		fx.updater.On("UpdateAll", mock.Anything).
			Run(func(args mock.Arguments) {
				ctx, _ := args.Get(0).(context.Context)
				fx.shutdown()
				<-ctx.Done()
			}).
			Return(partial, fmt.Errorf("location update interrupted: %w", context.Canceled)).Once()

		rec, body := fx.do(t, http.MethodPost, "/api/batch/update-locations", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["message"], "interrupted")
		result, ok := body["result"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 5, result["total"], 0)
		assert.InDelta(t, 2, result["success"], 0)
		assert.InDelta(t, 1, result["failed"], 0)
	})

	t.Run("status", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.updater.On("Status", mock.Anything).Return(models.NewLocationStatus(4, 1), nil).Once()

		rec, body := fx.do(t, http.MethodGet, "/api/batch/status", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 4, body["totalRestaurants"], 0)
		assert.InDelta(t, 3, body["restaurantsWithoutLocation"], 0)
		assert.Equal(t, "25.00%", body["completionRate"])
	})

	t.Run("restaurants without location use the batch page size", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.restaurants.On("WithoutLocation", mock.Anything, service.Page{Number: 0, Size: 50}).
			Return(nil, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/batch/restaurants-without-location", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("restaurants with location", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.restaurants.On("WithLocation", mock.Anything, service.Page{Number: 2, Size: 10}).
			Return([]models.Restaurant{{ID: 5, Name: "Foo"}}, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/batch/restaurants-with-location?page=2&size=10", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":5,"restaurantName":"Foo"}]`, rec.Body.String())
	})

	t.Run("test api reports failing key", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.updater.On("TestKeys", mock.Anything).Return([]service.KeyCheck{
			{Index: 0, Key: "****0001", OK: true},
			{Index: 1, Key: "****0002", OK: false, Error: "quota"},
		}, nil).Once()

		rec, body := fx.do(t, http.MethodGet, "/api/batch/test-api", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "API keys failed", body["message"])
		assert.Len(t, body["keys"], 2)
	})

	t.Run("update restaurant", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		place := models.Place{Latitude: ptr(37.5), Longitude: ptr(127.0), Address: "Seoul road 1"}
		restaurant := &models.Restaurant{ID: 7, Name: "Foo", Latitude: place.Latitude, Longitude: place.Longitude,
			RoadAddress: ptr(place.Address)}
		fx.updater.On("UpdateByID", mock.Anything, int64(7)).Return(models.Updated("Foo", place), restaurant, nil).Once()

		rec, body := fx.do(t, http.MethodPost, "/api/batch/update-restaurant/7", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Location updated successfully", body["message"])
		assert.Equal(t, "updated", body["outcome"])
	})

	t.Run("update restaurant interrupted", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.updater.On("UpdateByID", mock.Anything, int64(9)).
			Return(models.Interrupted(context.Canceled), &models.Restaurant{ID: 9, Name: "Bar"}, nil).Once()

		rec, body := fx.do(t, http.MethodPost, "/api/batch/update-restaurant/9", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Location update interrupted by shutdown", body["message"])
		assert.Equal(t, "interrupted", body["outcome"])
	})

	t.Run("update missing restaurant", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.updater.On("UpdateByID", mock.Anything, int64(8)).
			Return(models.Outcome{}, nil, repository.ErrNotFound).Once()

		rec, body := fx.do(t, http.MethodPost, "/api/batch/update-restaurant/8", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("update restaurant with malformed id", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)

		rec, _ := fx.do(t, http.MethodPost, "/api/batch/update-restaurant/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRestaurantEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("list with filters", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.restaurants.On("List", mock.Anything, "Seoul", "chicken", service.Page{Number: 1, Size: 20}).
			Return([]models.Restaurant{{ID: 1, Name: "Chicken House"}}, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/restaurants?region=Seoul&keyword=chicken&page=1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":1,"restaurantName":"Chicken House"}]`, rec.Body.String())
	})

	t.Run("oversized page is capped", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.restaurants.On("List", mock.Anything, "", "", service.Page{Number: 0, Size: service.MaxPageSize}).
			Return(nil, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/restaurants?size=5000", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.restaurants.On("Get", mock.Anything, int64(3)).Return(nil, repository.ErrNotFound).Once()

		rec, body := fx.do(t, http.MethodGet, "/api/restaurants/3", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("store failure is internal", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.restaurants.On("Get", mock.Anything, int64(3)).Return(nil, assert.AnError).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/restaurants/3", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestFavoriteEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("toggle on", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.favorites.On("Toggle", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()

		rec, body := fx.do(t, http.MethodPost, "/api/favorites/1/2/toggle", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["isFavorite"])
		assert.Equal(t, "Favorite added", body["message"])
	})

	t.Run("add remove and check", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.favorites.On("Add", mock.Anything, int64(1), int64(2)).Return(nil).Once()
		fx.favorites.On("Remove", mock.Anything, int64(1), int64(2)).Return(nil).Once()
		fx.favorites.On("IsFavorite", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()

		rec, body := fx.do(t, http.MethodPost, "/api/favorites/1/2", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["isFavorite"])

		rec, body = fx.do(t, http.MethodDelete, "/api/favorites/1/2", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, body["isFavorite"])

		rec, body = fx.do(t, http.MethodGet, "/api/favorites/1/2", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, body["isFavorite"])
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.favorites.On("List", mock.Anything, int64(1)).Return([]models.Restaurant{{ID: 2, Name: "Foo"}}, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/favorites/1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":2,"restaurantName":"Foo"}]`, rec.Body.String())
	})

	t.Run("invalid restaurant id", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)

		rec, _ := fx.do(t, http.MethodPost, "/api/favorites/1/0", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBlacklistEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("add", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.blacklist.On("Add", mock.Anything, mock.MatchedBy(func(e models.BlacklistEntry) bool {
			return e.UserID == 1 && e.RestaurantID == 2 && e.Reason == "no show"
		})).Return(&models.BlacklistEntry{ID: 9, UserID: 1, RestaurantID: 2, Reason: "no show"}, nil).Once()

		rec, body := fx.do(t, http.MethodPost, "/api/blacklist",
			`{"userId":1,"restaurantId":2,"reason":"no show"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User added to blacklist", body["message"])
		entry, ok := body["blacklist"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 9, entry["id"], 0)
	})

	t.Run("add duplicate", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.blacklist.On("Add", mock.Anything, mock.Anything).Return(nil, service.ErrAlreadyBlacklisted).Once()

		rec, _ := fx.do(t, http.MethodPost, "/api/blacklist", `{"userId":1,"restaurantId":2}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)

		rec, body := fx.do(t, http.MethodPost, "/api/blacklist", `{"userId":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, body["message"], "malformed JSON body")
	})

	t.Run("check", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.blacklist.On("IsBlacklisted", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()

		rec, body := fx.do(t, http.MethodGet, "/api/blacklist/check?userId=1&restaurantId=2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["isBlacklisted"])
	})

	t.Run("check without user", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)

		rec, _ := fx.do(t, http.MethodGet, "/api/blacklist/check?restaurantId=2", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list by restaurant and user", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.blacklist.On("ListByRestaurant", mock.Anything, int64(2)).Return(nil, nil).Once()
		fx.blacklist.On("ListByUser", mock.Anything, int64(1)).
			Return([]models.BlacklistEntry{{ID: 9, UserID: 1, RestaurantID: 2}}, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/blacklist/restaurant/2", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())

		rec, _ = fx.do(t, http.MethodGet, "/api/blacklist/user/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":9`)
	})

	t.Run("remove missing", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.blacklist.On("Remove", mock.Anything, int64(9)).Return(repository.ErrNotFound).Once()

		rec, _ := fx.do(t, http.MethodDelete, "/api/blacklist/9", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReservationEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.reservations.On("Create", mock.Anything, mock.MatchedBy(func(r models.Reservation) bool {
			return r.UserID == 1 && r.RestaurantID == 2 && r.Guests == 4 && r.Date == "2025-05-01"
		})).Return(&models.Reservation{ID: 11, UserID: 1, RestaurantID: 2, Status: models.StatusPending}, nil).Once()

		rec, body := fx.do(t, http.MethodPost, "/api/reservations",
			`{"userId":1,"restaurantId":2,"guests":4,"reservationDate":"2025-05-01","reservationTime":"19:00"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		reservation, ok := body["reservation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "PENDING", reservation["status"])
	})

	t.Run("create while blacklisted", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.reservations.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrBlacklisted).Once()

		rec, body := fx.do(t, http.MethodPost, "/api/reservations", `{"userId":1,"restaurantId":2}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("get and list", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.reservations.On("Get", mock.Anything, int64(11)).
			Return(&models.Reservation{ID: 11, UserName: "neo"}, nil).Once()
		fx.reservations.On("ListByUser", mock.Anything, int64(1)).Return(nil, nil).Once()
		fx.reservations.On("ListByRestaurant", mock.Anything, int64(2)).
			Return([]models.Reservation{{ID: 11}}, nil).Once()

		rec, body := fx.do(t, http.MethodGet, "/api/reservations/11", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "neo", body["userName"])

		rec, _ = fx.do(t, http.MethodGet, "/api/reservations/user/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())

		rec, _ = fx.do(t, http.MethodGet, "/api/reservations/restaurant/2", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":11`)
	})

	t.Run("approve from wrong state", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.reservations.On("Approve", mock.Anything, int64(11)).Return(nil, service.ErrInvalidTransition).Once()

		rec, _ := fx.do(t, http.MethodPut, "/api/reservations/11/approve", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reject with reason", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.reservations.On("Reject", mock.Anything, int64(11), "fully booked").
			Return(&models.Reservation{ID: 11, Status: models.StatusRejected, RejectionReason: ptr("fully booked")}, nil).
			Once()

		rec, body := fx.do(t, http.MethodPut, "/api/reservations/11/reject", `{"reason":"fully booked"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Reservation rejected", body["message"])
	})

	t.Run("reject cancellation without body", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.reservations.On("RejectCancellation", mock.Anything, int64(11), "").
			Return(&models.Reservation{ID: 11, Status: models.StatusApproved}, nil).Once()

		rec, _ := fx.do(t, http.MethodPut, "/api/reservations/11/reject-cancel", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cancel and approve cancellation", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.reservations.On("Cancel", mock.Anything, int64(11)).
			Return(&models.Reservation{ID: 11, Status: models.StatusCancelledPending}, nil).Once()
		fx.reservations.On("ApproveCancellation", mock.Anything, int64(11)).
			Return(&models.Reservation{ID: 11, Status: models.StatusCancelled}, nil).Once()

		rec, body := fx.do(t, http.MethodPut, "/api/reservations/11/cancel", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Reservation cancelled", body["message"])

		rec, body = fx.do(t, http.MethodPut, "/api/reservations/11/approve-cancel", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Cancellation approved", body["message"])
	})

	t.Run("visit", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)
		fx.reservations.On("UpdateVisit", mock.Anything, int64(11), models.VisitNoShow, "did not come").
			Return(&models.Reservation{ID: 11, Status: models.StatusApproved}, nil).Once()

		rec, _ := fx.do(t, http.MethodPut, "/api/reservations/11/visit",
			`{"visitStatus":"no_show","reason":"did not come"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("visit with unknown status", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t, 0, 0)

		rec, body := fx.do(t, http.MethodPut, "/api/reservations/11/visit", `{"visitStatus":"LATE"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, body["message"], "unknown visit status")
	})
}
