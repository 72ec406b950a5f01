package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mindflow/internal/ai"
	"mindflow/internal/handlers"
	"mindflow/internal/relay"
	"mindflow/internal/usecases"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return err
	}
	a.logger.Info("connected to db successfully", zap.String("driver", a.cfg.DBDriver))

	generator, err := ai.New(ctx, a.cfg)
	if err != nil {
		// analysis still works, from the local fallback only
		a.logger.Warn("model disabled", zap.Error(err))
		generator = nil
	}

	webhook := relay.NewWebhookRelay(a.cfg.WebhookURL)
	if !webhook.Enabled() {
		a.logger.Warn("analysis webhook not configured")
	}

	router := handlers.NewRouter(handlers.Deps{
		Store:    store,
		Analyzer: usecases.NewAnalyzer(generator, a.logger),
		Sender:   webhook,
		Logger:   a.logger,
	})

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
