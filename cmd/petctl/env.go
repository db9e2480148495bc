package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"pet_market/internal/application"
	"pet_market/internal/config"
	"pet_market/internal/domain/service/dashboard"
	"pet_market/internal/domain/service/display"
	"pet_market/internal/domain/service/preference"
	"pet_market/internal/infrastructure/backend"
	"pet_market/internal/infrastructure/clipboard"
	"pet_market/internal/infrastructure/persistence"
	"pet_market/pkg/application/connectors"
	"pet_market/pkg/contextx"
	"pet_market/pkg/logx"
)

// env is the set of services a single command works with. Logs go to stderr
// so stdout stays parseable.
type env struct {
	gateway   *backend.Client
	dashboard *dashboard.Service
	redis     *connectors.Redis
}

func newEnv(ctx context.Context) (context.Context, *env, error) {
	cfg, err := config.Load()
	if err != nil {
		return ctx, nil, fmt.Errorf("config.Load: %w", err)
	}

	log, err := logx.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.NoColor)
	if err != nil {
		return ctx, nil, fmt.Errorf("logx.NewLogger: %w", err)
	}

	ctx = contextx.WithLogger(ctx, log.With(slog.String("app", "petctl")))

	redisConnector := &connectors.Redis{ //nolint:exhaustruct
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           1,
		MinIdleConnections: 0,
		MaxIdleConnections: 1,
	}

	kv, err := application.NewPreferenceKV(ctx, cfg, redisConnector)
	if err != nil {
		return ctx, nil, err
	}

	gateway, err := application.NewBackendClient(cfg.Backend, cfg.Log.FieldMaxLen)
	if err != nil {
		return ctx, nil, err
	}

	overrides, err := display.ParseLabelOverrides(cfg.Display.LevelLabelOverrides)
	if err != nil {
		return ctx, nil, fmt.Errorf("display.ParseLabelOverrides: %w", err)
	}

	dashboardService := dashboard.NewService(
		gateway,
		persistence.NewResultRepository(),
		preference.NewService(kv, cfg.Preferences.TTL),
		clipboard.NewSystem(),
		display.NewDeriver(
			display.WithLevelLabels(overrides),
			display.WithAlertThreshold(cfg.Display.AlertThresholdPercent),
		),
		nil,
	)

	dashboardService.RestorePreferences(ctx)

	return ctx, &env{
		gateway:   gateway,
		dashboard: dashboardService,
		redis:     redisConnector,
	}, nil
}

func (e *env) Close(ctx context.Context) {
	e.redis.Close(ctx)
}
