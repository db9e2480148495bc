package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pet_market/internal/application"
	"pet_market/internal/config"
	"pet_market/pkg/contextx"
	"pet_market/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Default().Error("application failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log, err := logx.NewLogger(os.Stdout, cfg.Log.Level, cfg.Log.NoColor)
	if err != nil {
		return fmt.Errorf("logx.NewLogger: %w", err)
	}

	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log.With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
	))

	log.InfoContext(ctx, "application starting",
		slog.String("backend", cfg.Backend.BaseURL),
		slog.String("preferences", cfg.Preferences.Backend),
	)

	if err := application.Run(ctx, cfg); err != nil {
		return err
	}

	log.InfoContext(ctx, "application stopped")

	return nil
}
