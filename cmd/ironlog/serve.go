package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/ironlog/internal/api"
	"github.com/terraincognita07/ironlog/internal/db"
	"github.com/terraincognita07/ironlog/internal/i18n"
	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), state)
		},
	}
}

func runServer(ctx context.Context, state *cliState) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, log := state.cfg, state.log

	database, err := state.openDatabase()
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Error("close database failed", "error", err)
		}
	}()

	i18nManager, err := i18n.NewManager(cfg.DefaultLanguage, cfg.LocalesDir)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(database, api.HandlerOptions{
		SecretKey:        cfg.SecretKey,
		TemplatesDir:     cfg.TemplatesDir,
		Location:         cfg.Location,
		I18n:             i18nManager,
		CookieSecure:     cfg.CookieSecure,
		FetchConcurrency: cfg.FetchConcurrency,
		Logger:           log,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	providers, err := api.InitProviders(api.OAuthOptions{
		SecretKey:          cfg.SecretKey,
		CookieSecure:       cfg.CookieSecure,
		GoogleClientID:     cfg.GoogleClientID,
		GoogleClientSecret: cfg.GoogleClientSecret,
		GoogleCallbackURL:  cfg.GoogleCallbackURL,
	})
	if err != nil {
		return fmt.Errorf("identity providers init failed: %w", err)
	}
	log.Info("identity providers initialized", "providers", providers)

	app := newFiberApp(handler, cfg.CookieSecure, cfg.StaticDir, log.StdLogger(zapcore.InfoLevel).Writer())

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	}()

	log.Info("ironlog listening",
		"addr", "0.0.0.0:"+cfg.Port,
		"db_driver", cfg.DBDriver,
		"tz", cfg.Location.String(),
		"env", cfg.Env,
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	log.Info("server stopped")
	return nil
}
