package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/UnknownOlympus/choprest/internal/geocoding"
	"github.com/UnknownOlympus/choprest/internal/metrics"
	"github.com/UnknownOlympus/choprest/internal/models"
	"github.com/UnknownOlympus/choprest/internal/ratelimit"
	"github.com/UnknownOlympus/choprest/internal/repository"
	"github.com/google/uuid"
)

const (
	progressEvery = 10
	testQuery     = "서울역"
)

var (
	// ErrPassInProgress is returned when a location update pass is requested while another one runs.
	ErrPassInProgress = errors.New("location update pass already in progress")
	// ErrNoSearchTerms is returned for restaurants without a usable name.
	ErrNoSearchTerms = errors.New("restaurant has no name to search for")
)

// KeySource hands out provider credentials.
type KeySource interface {
	Next() string
	Size() int
	Key(idx int) (string, error)
}

// Throttle gates outbound provider calls.
type Throttle interface {
	Acquire(ctx context.Context) error
	Penalize(ctx context.Context) error
}

// UpdaterConfig holds the retry and scheduling parameters of the location updater.
type UpdaterConfig struct {
	ProviderName string        // Name of the provider for metrics labeling
	MaxRetries   int           // Attempts per query variant
	RetryDelay   time.Duration // Pause between attempts after a non-quota error
	Interval     time.Duration // Period of automatic passes, zero disables them
}

// KeyCheck is the result of probing one provider credential.
type KeyCheck struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// LocationUpdater fills in missing coordinates, addresses and phone numbers of restaurants
// by searching the geocoding provider. Restaurants are processed one at a time.
type LocationUpdater struct {
	log      *slog.Logger
	store    repository.LocationStore
	provider geocoding.Provider
	keys     KeySource
	limiter  Throttle
	clock    ratelimit.Clock
	metrics  *metrics.Metrics
	cfg      UpdaterConfig

	running sync.Mutex
}

// NewLocationUpdater creates a new instance of LocationUpdater.
func NewLocationUpdater(
	log *slog.Logger,
	store repository.LocationStore,
	provider geocoding.Provider,
	keys KeySource,
	limiter Throttle,
	clock ratelimit.Clock,
	metrics *metrics.Metrics,
	cfg UpdaterConfig,
) *LocationUpdater {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}

	return &LocationUpdater{
		log:      log,
		store:    store,
		provider: provider,
		keys:     keys,
		limiter:  limiter,
		clock:    clock,
		metrics:  metrics,
		cfg:      cfg,
	}
}

// Run starts periodic location update passes until ctx is cancelled.
// It returns immediately when no interval is configured.
func (lu *LocationUpdater) Run(ctx context.Context) {
	if lu.cfg.Interval <= 0 {
		lu.log.InfoContext(ctx, "Periodic location updates disabled")
		return
	}

	ticker := time.NewTicker(lu.cfg.Interval)
	defer ticker.Stop()

	lu.log.InfoContext(ctx, "Location updater started...", "interval", lu.cfg.Interval)

	for {
		select {
		case <-ctx.Done():
			lu.log.InfoContext(ctx, "Location updater stopped.")
			return
		case <-ticker.C:
			if _, err := lu.UpdateAll(ctx); err != nil {
				lu.log.ErrorContext(ctx, "Scheduled location update failed", "error", err)
			}
		}
	}
}

// UpdateAll runs one pass over every restaurant missing location data.
// Per-restaurant failures are counted, not returned. An error is returned when the restaurants
// cannot be loaded, when another pass is running, or when ctx is cancelled mid-pass; in the
// last case the partial result is returned as well.
func (lu *LocationUpdater) UpdateAll(ctx context.Context) (models.BatchResult, error) {
	if !lu.running.TryLock() {
		return models.BatchResult{}, ErrPassInProgress
	}
	defer lu.running.Unlock()

	lu.metrics.ActivePasses.Set(1)
	defer lu.metrics.ActivePasses.Set(0)

	runID := uuid.NewString()
	log := lu.log.With("run_id", runID)

	restaurants, err := lu.store.FetchRestaurantsWithoutLocation(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to fetch restaurants", "error", err)
		return models.BatchResult{RunID: runID}, fmt.Errorf("failed to start location update: %w", err)
	}

	result := models.BatchResult{RunID: runID, Total: len(restaurants)}
	if len(restaurants) == 0 {
		log.InfoContext(ctx, "No restaurants without location.")
		return result, nil
	}

	log.InfoContext(ctx, "Starting location update", "restaurants", len(restaurants))

	for idx, restaurant := range restaurants {
		if err = ctx.Err(); err != nil {
			log.WarnContext(ctx, "Location update interrupted", "processed", idx, "result", result.String())
			return result, fmt.Errorf("location update interrupted: %w", err)
		}

		outcome := lu.updateCurrent(ctx, restaurant.ID)
		if outcome.Kind == models.OutcomeInterrupted {
			log.WarnContext(ctx, "Location update interrupted", "processed", idx, "result", result.String())
			return result, fmt.Errorf("location update interrupted: %w", ctx.Err())
		}
		result.Add(outcome)
		lu.metrics.RestaurantsProcessed.WithLabelValues(string(outcome.Kind)).Inc()

		if (idx+1)%progressEvery == 0 {
			log.InfoContext(ctx, "Location update progress", "processed", idx+1, "total", len(restaurants))
		}
	}

	log.InfoContext(ctx, "Location update finished",
		"total", result.Total, "success", result.Success, "failed", result.Failed, "skipped", result.Skipped)

	return result, nil
}

// updateCurrent reloads the restaurant before enriching it, so that rows completed since the
// pass started are skipped instead of being searched and overwritten.
func (lu *LocationUpdater) updateCurrent(ctx context.Context, id int64) models.Outcome {
	current, err := lu.store.GetRestaurant(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		lu.log.DebugContext(ctx, "Restaurant disappeared, skipping", "restaurant", id)
		return models.Skipped()
	case err != nil:
		return lu.failed(ctx, err)
	}

	return lu.UpdateOne(ctx, *current)
}

// UpdateOne enriches a single restaurant. It never returns an error; failures are reported
// through the outcome.
func (lu *LocationUpdater) UpdateOne(ctx context.Context, restaurant models.Restaurant) models.Outcome {
	if restaurant.IsComplete() {
		lu.log.DebugContext(ctx, "Restaurant already has location, skipping", "restaurant", restaurant.ID)
		return models.Skipped()
	}

	queries := searchQueries(restaurant)
	if len(queries) == 0 {
		return models.Failed(ErrNoSearchTerms)
	}

	var failures int
	var lastErr error

	for _, query := range queries {
		place, err := lu.searchWithRetry(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return models.Interrupted(err)
			}
			lu.log.WarnContext(ctx, "Search failed, trying next query",
				"restaurant", restaurant.ID, "query", query, "error", err)
			failures++
			lastErr = err
			continue
		}
		if place == nil {
			lu.log.DebugContext(ctx, "No result for query", "restaurant", restaurant.ID, "query", query)
			continue
		}

		if err = lu.store.UpdateRestaurantLocation(ctx, restaurant.ID, *place); err != nil {
			lu.log.ErrorContext(ctx, "Failed to save location", "restaurant", restaurant.ID, "error", err)
			return lu.failed(ctx, err)
		}

		lu.log.InfoContext(ctx, "Location updated", "restaurant", restaurant.ID, "name", restaurant.Name,
			"query", query, "address", place.Address)

		return models.Updated(query, *place)
	}

	if failures == len(queries) {
		return models.Failed(lastErr)
	}

	lu.log.InfoContext(ctx, "No location found", "restaurant", restaurant.ID, "name", restaurant.Name)

	return models.NotFound()
}

// UpdateByID loads the restaurant and enriches it. The returned restaurant carries the applied
// location when the outcome is updated.
func (lu *LocationUpdater) UpdateByID(ctx context.Context, id int64) (models.Outcome, *models.Restaurant, error) {
	restaurant, err := lu.store.GetRestaurant(ctx, id)
	if err != nil {
		return models.Outcome{}, nil, err
	}

	outcome := lu.UpdateOne(ctx, *restaurant)
	if outcome.Kind != models.OutcomeInterrupted {
		lu.metrics.RestaurantsProcessed.WithLabelValues(string(outcome.Kind)).Inc()
	}
	if outcome.Kind == models.OutcomeUpdated {
		restaurant.Apply(*outcome.Place)
	}

	return outcome, restaurant, nil
}

// Status reports how many restaurants already have location data.
func (lu *LocationUpdater) Status(ctx context.Context) (models.LocationStatus, error) {
	total, err := lu.store.CountRestaurants(ctx)
	if err != nil {
		return models.LocationStatus{}, err
	}

	located, err := lu.store.CountRestaurantsWithLocation(ctx)
	if err != nil {
		return models.LocationStatus{}, err
	}

	return models.NewLocationStatus(total, located), nil
}

// TestKeys sends one test search with every configured credential.
// A search without results still counts as a working key.
func (lu *LocationUpdater) TestKeys(ctx context.Context) ([]KeyCheck, error) {
	checks := make([]KeyCheck, 0, lu.keys.Size())

	for idx := range lu.keys.Size() {
		key, err := lu.keys.Key(idx)
		if err != nil {
			return nil, err
		}
		if err = lu.limiter.Acquire(ctx); err != nil {
			return nil, err
		}

		check := KeyCheck{Index: idx, Key: maskKey(key), OK: true}
		if _, err = lu.provider.Search(ctx, testQuery, key); err != nil {
			check.OK = false
			check.Error = err.Error()
			lu.log.WarnContext(ctx, "API key check failed", "index", idx, "error", err)
		}
		checks = append(checks, check)
	}

	return checks, nil
}

// failed reports err as a failure, unless it was caused by ctx being cancelled.
func (lu *LocationUpdater) failed(ctx context.Context, err error) models.Outcome {
	if ctx.Err() != nil {
		return models.Interrupted(err)
	}

	return models.Failed(err)
}

// searchWithRetry runs one query variant through the limiter and the provider, retrying
// failed calls. A quota rejection triggers the limiter cooldown, any other error waits
// RetryDelay before the next attempt.
func (lu *LocationUpdater) searchWithRetry(ctx context.Context, query string) (*models.Place, error) {
	var lastErr error

	for attempt := 1; attempt <= lu.cfg.MaxRetries; attempt++ {
		if err := lu.limiter.Acquire(ctx); err != nil {
			return nil, err
		}

		startTime := time.Now()
		place, err := lu.provider.Search(ctx, query, lu.keys.Next())
		duration := time.Since(startTime).Seconds()
		lu.metrics.RequestSeconds.WithLabelValues(lu.cfg.ProviderName).Observe(duration)

		if err == nil {
			return place, nil
		}

		lastErr = err
		lu.metrics.ProviderErrors.WithLabelValues(lu.cfg.ProviderName).Inc()

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		if errors.Is(err, geocoding.ErrQuotaExceeded) {
			lu.metrics.QuotaHits.Inc()
			if err = lu.limiter.Penalize(ctx); err != nil {
				return nil, err
			}
			continue
		}

		if attempt == lu.cfg.MaxRetries {
			break
		}

		lu.log.WarnContext(ctx, "Search attempt failed, retrying",
			"query", query, "attempt", attempt, "max_retries", lu.cfg.MaxRetries, "error", err)
		if err = lu.clock.Sleep(ctx, lu.cfg.RetryDelay); err != nil {
			return nil, fmt.Errorf("retry wait interrupted: %w", err)
		}
	}

	return nil, fmt.Errorf("search %q failed after %d attempts: %w", query, lu.cfg.MaxRetries, lastErr)
}

// searchQueries builds the query variants tried for a restaurant, most specific first.
// Blank parts are left out and duplicates collapse into one query.
func searchQueries(restaurant models.Restaurant) []string {
	name := strings.TrimSpace(restaurant.Name)
	if name == "" {
		return nil
	}

	candidates := make([]string, 0, 3)
	if branch := trimmed(restaurant.Branch); branch != "" {
		candidates = append(candidates, name+" "+branch)
	}
	candidates = append(candidates, name)
	if region := trimmed(restaurant.Region); region != "" {
		candidates = append(candidates, name+" "+region)
	}

	seen := make(map[string]struct{}, len(candidates))
	queries := make([]string, 0, len(candidates))
	for _, query := range candidates {
		if _, ok := seen[query]; ok {
			continue
		}
		seen[query] = struct{}{}
		queries = append(queries, query)
	}

	return queries
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}

// maskKey keeps the last four characters of a credential, counted in runes.
func maskKey(key string) string {
	const visible = 4
	runes := []rune(key)
	if len(runes) <= visible {
		return strings.Repeat("*", len(runes))
	}

	return strings.Repeat("*", len(runes)-visible) + string(runes[len(runes)-visible:])
}
