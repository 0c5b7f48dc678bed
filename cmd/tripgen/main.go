// README: Entry point; cobra root command with serve, migrate, places and plan.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tripgen/internal/config"
	"tripgen/internal/logging"
)

var (
	cfg    config.Config
	cfgErr error
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tripgen",
	Short: "Travel itinerary generator backed by an LLM completion API",
	Long: `tripgen serves the travel planner API: popular destination suggestions,
day-by-day itineraries generated by an LLM, and a store of saved trips.

Configuration is read from TRIPGEN_* environment variables and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, cfgErr = config.Load()
		if cfgErr != nil && !errors.Is(cfgErr, config.ErrMissingCredential) {
			return cfgErr
		}
		var err error
		logger, err = logging.New(cfg.Log.Level, cfg.Log.Dev)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// requireCredential fails commands that talk to the completion provider.
func requireCredential() error {
	return cfgErr
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, placesCmd, planCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
