package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tripgen/internal/config"
	"tripgen/internal/infra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply Postgres schema migrations for the trip store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Store.Backend != config.StorePostgres {
			return fmt.Errorf("migrate needs TRIPGEN_STORE=%s, got %q", config.StorePostgres, cfg.Store.Backend)
		}
		if err := infra.MigratePostgres(cfg.DB.DSN); err != nil {
			return err
		}
		logger.Info("migrations applied")
		return nil
	},
}
