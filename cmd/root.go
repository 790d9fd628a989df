package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/choprest/internal/config"
	"github.com/UnknownOlympus/choprest/internal/geocoding"
	"github.com/UnknownOlympus/choprest/internal/keyring"
	"github.com/UnknownOlympus/choprest/internal/metrics"
	"github.com/UnknownOlympus/choprest/internal/ratelimit"
	"github.com/UnknownOlympus/choprest/internal/repository"
	"github.com/UnknownOlympus/choprest/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// keylessPlaceholder stands in for the credential of providers that do not need one.
const keylessPlaceholder = "keyless"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "choprest",
	Short: "Restaurant discovery backend with location enrichment",
	Long: `
choprest serves the restaurant, favorite, blacklist and reservation API and fills in
missing restaurant coordinates, addresses and phone numbers from a geocoding provider.
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
}

// app holds the components shared by every command.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	pool     *pgxpool.Pool
	repo     *repository.Repository
	updater  *service.LocationUpdater
}

// newApp loads the configuration and wires the database, provider, key rotator, rate limiter
// and location updater.
func newApp(ctx context.Context) (*app, error) {
	cfg := config.MustLoad(configPath)
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	keys, err := keyring.New(providerKeys(cfg.Provider))
	if err != nil {
		return nil, fmt.Errorf("invalid provider keys: %w", err)
	}

	provider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:    geocoding.ProviderType(cfg.Provider.Type),
		Timeout: cfg.Provider.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoding provider: %w", err)
	}

	pool, err := repository.NewDatabase(
		ctx, cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	repo := repository.NewRepository(pool, logger)

	clock := ratelimit.SystemClock{}
	limiter := ratelimit.New(
		ratelimit.Config{
			Delay:        cfg.RateLimit.Delay,
			MaxPerMinute: cfg.RateLimit.MaxPerMinute,
			Cooldown:     cfg.RateLimit.Cooldown,
		},
		logger,
		ratelimit.WithClock(clock),
		ratelimit.WithWaitObserver(appMetrics.ObserveWait),
	)

	updater := service.NewLocationUpdater(logger, repo, provider, keys, limiter, clock, appMetrics,
		service.UpdaterConfig{
			ProviderName: cfg.Provider.Type,
			MaxRetries:   cfg.Batch.MaxRetries,
			RetryDelay:   cfg.Batch.RetryDelay,
			Interval:     cfg.Batch.Interval,
		})

	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.Provider.Type, "keys", keys.Size())

	return &app{
		cfg:      cfg,
		log:      logger,
		registry: reg,
		metrics:  appMetrics,
		pool:     pool,
		repo:     repo,
		updater:  updater,
	}, nil
}

func (a *app) close() {
	a.pool.Close()
}

// providerKeys returns the configured credentials. Keyless providers get a single placeholder
// so that the rotator always has a key to hand out.
func providerKeys(cfg config.ProviderConfig) []string {
	if len(cfg.Keys) == 0 && geocoding.ProviderType(cfg.Type) == geocoding.ProviderTypeNominatim {
		return []string{keylessPlaceholder}
	}

	return cfg.Keys
}
