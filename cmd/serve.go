package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/choprest/internal/api"
	"github.com/UnknownOlympus/choprest/internal/service"
	"github.com/spf13/cobra"
)

const (
	readTimeout     = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and run periodic location updates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Create a context that will be canceled when an interrupt signal is received.
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		notifications := service.NewNotificationService(a.log, a.repo)
		router := api.NewRouter(api.Deps{
			Log:           a.log,
			Metrics:       a.metrics,
			Gatherer:      a.registry,
			DB:            a.pool,
			Updater:       a.updater,
			Restaurants:   service.NewRestaurantService(a.repo),
			Favorites:     service.NewFavoriteService(a.log, a.repo),
			Blacklist:     service.NewBlacklistService(a.log, a.repo),
			Reservations:  service.NewReservationService(a.log, a.repo, a.repo).WithNotifier(notifications),
			Menus:         service.NewMenuService(a.log, a.repo),
			Events:        service.NewEventService(a.repo),
			Reviews:       service.NewReviewService(a.log, a.repo),
			Chat:          service.NewChatService(a.log, a.repo),
			Notifications: notifications,
			RPS:           a.cfg.API.RPS,
			Burst:         a.cfg.API.Burst,
			Lifetime:      ctx,
		})

		// A full location pass can outlast any write timeout, so none is set.
		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", a.cfg.Server.Port),
			Handler:           router,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: readTimeout,
		}

		go a.updater.Run(ctx)

		serveErr := make(chan error, 1)
		go func() {
			a.log.InfoContext(ctx, "Starting HTTP server", "port", a.cfg.Server.Port)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		a.log.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

		select {
		case err = <-serveErr:
			if err != nil {
				return fmt.Errorf("http server failed: %w", err)
			}
		case <-ctx.Done():
			a.log.InfoContext(ctx, "Shutdown signal received. Stopping application...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err = server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down http server: %w", err)
		}

		a.log.InfoContext(shutdownCtx, "Application stopped gracefully.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
