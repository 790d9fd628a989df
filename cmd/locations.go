package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var updateLocationsCmd = &cobra.Command{
	Use:   "update-locations",
	Short: "Run one location update pass and print the summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		result, err := a.updater.UpdateAll(ctx)
		// An interrupted pass still reports what it got through.
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		if err != nil {
			return fmt.Errorf("location update: %w", err)
		}

		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print how many restaurants have location data",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		status, err := a.updater.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("location status: %w", err)
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(status)
	},
}

func init() {
	rootCmd.AddCommand(updateLocationsCmd, statusCmd)
}
