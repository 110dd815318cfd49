package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"campaign-tracker/internal/adapter/memory"
	"campaign-tracker/internal/adapter/postgres"
	"campaign-tracker/internal/config"
	"campaign-tracker/internal/config/configs"
	"campaign-tracker/internal/core/port"
	"campaign-tracker/internal/db"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

var rootCmd = &cobra.Command{
	Use:   "campaign-tracker",
	Short: "Campaign tracking service",
	Long: `campaign-tracker lets users create campaigns, invite influencers and
managers, and track submitted tweets against each campaign's target.`,
	SilenceUsage: true,
}

// main is the entry point of the campaign-tracker service. Subcommands load
// configuration from the environment; a termination signal cancels the
// command context.
func main() {
	a := &app{}
	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		a.cfg = cfg
		a.logger = cfg.Log.New(os.Stdout, cfg.Env)
		slog.SetDefault(a.logger)
		return nil
	}
	rootCmd.AddCommand(newServeCmd(a), newMigrateCmd(a), newSeedCmd(a))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// openStores returns the repositories selected by STORAGE_DRIVER and a
// function releasing their resources.
func (a *app) openStores(ctx context.Context) (port.CampaignRepository, port.UserRepository, func(), error) {
	if a.cfg.Storage.Normalized() == configs.StorageMemory {
		a.logger.Warn("using in-memory storage; data is lost on exit")
		return memory.NewCampaignStore(), memory.NewUserStore(), func() {}, nil
	}

	if a.cfg.Psql.RunMigrations {
		if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		a.logger.Info("migrations applied successfully")
	}
	pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database connection: %w", err)
	}
	return postgres.NewCampaignRepository(pool), postgres.NewUserRepository(pool), pool.Close, nil
}

var errNoSecret = errors.New("AUTH_SECRET must be set")
