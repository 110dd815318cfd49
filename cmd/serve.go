package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	httpadapter "campaign-tracker/internal/adapter/http"
	"campaign-tracker/internal/adapter/twitter"
	"campaign-tracker/internal/adapter/usecase"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

// serve starts the HTTP server and blocks until ctx is cancelled, then
// shuts the server down gracefully.
func (a *app) serve(ctx context.Context) error {
	if a.cfg.Auth.Secret == "" {
		return errNoSecret
	}

	campaigns, users, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	tw := twitter.NewClient(a.cfg.Twitter)
	svc := usecase.NewCampaignUseCase(campaigns, users, tw, tw, a.logger)
	handler := httpadapter.NewHandler(svc, a.logger, httpadapter.Options{
		AuthSecret:  []byte(a.cfg.Auth.Secret),
		SubmitRate:  rate.Limit(a.cfg.RateLimit.RPS),
		SubmitBurst: a.cfg.RateLimit.Burst,
	})
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		a.logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
