package main

import (
	"time"

	"github.com/spf13/cobra"

	"campaign-tracker/internal/db"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(*cobra.Command, []string) error {
			if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
				return err
			}
			a.logger.Info("migrations applied successfully")
			return nil
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo users and campaigns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			campaigns, users, closeStores, err := a.openStores(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStores()
			if err = db.Seed(cmd.Context(), campaigns, users, time.Now().UTC()); err != nil {
				return err
			}
			a.logger.Info("demo data inserted")
			return nil
		},
	}
}
