package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mymmrac/telego"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"pet_market/internal/config"
	"pet_market/internal/domain"
	"pet_market/internal/domain/service/dashboard"
	"pet_market/internal/domain/service/display"
	"pet_market/internal/domain/service/preference"
	"pet_market/internal/infrastructure/backend"
	"pet_market/internal/infrastructure/clipboard"
	"pet_market/internal/infrastructure/notifier"
	"pet_market/internal/infrastructure/persistence"
	"pet_market/internal/server"
	"pet_market/internal/transport/bot"
	"pet_market/internal/transport/bot/handler"
	"pet_market/internal/worker"
	"pet_market/pkg/application/connectors"
	"pet_market/pkg/application/modules"
	"pet_market/pkg/httpx"
	"pet_market/pkg/logx"
	"pet_market/pkg/middlewarex"
)

const shutdownTimeout = 10 * time.Second

// Run wires the dashboard engine and blocks until ctx is cancelled or a
// module fails.
func Run(ctx context.Context, cfg config.Config) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	redisConnector := &connectors.Redis{ //nolint:exhaustruct
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	defer redisConnector.Close(ctx)

	kv, err := NewPreferenceKV(ctx, cfg, redisConnector)
	if err != nil {
		return err
	}

	gateway, err := NewBackendClient(cfg.Backend, cfg.Log.FieldMaxLen)
	if err != nil {
		return err
	}

	overrides, err := display.ParseLabelOverrides(cfg.Display.LevelLabelOverrides)
	if err != nil {
		return fmt.Errorf("display.ParseLabelOverrides: %w", err)
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
		dashboard.NewMetrics(registry),
	)

	updateClock := worker.NewUpdateClock(
		gateway,
		worker.WithIntervals(cfg.Clock.CountingInterval, cfg.Clock.IdleInterval),
		worker.WithClockMetrics(worker.NewClockMetrics(registry)),
	)

	telegramBot, err := newTelegramBot(cfg.Bot)
	if err != nil {
		return err
	}

	var ready atomic.Bool

	ctx, cancelGroup := context.WithCancel(ctx)
	defer cancelGroup()

	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Ready:         ready.Load,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	err = modules.HTTPServer{
		Name:            "dashboard-api",
		ShutdownTimeout: shutdownTimeout,
	}.Run(ctx, g, newHTTPServer(ctx, cfg, dashboardService, updateClock))
	if err != nil {
		cancelGroup()
		_ = g.Wait()

		return fmt.Errorf("modules.HTTPServer.Run: %w", err)
	}

	g.Go(func() error {
		return updateClock.Run(ctx)
	})

	g.Go(func() error {
		if _, err := dashboardService.Init(ctx); err != nil && !errors.Is(err, domain.ErrStaleResponse) {
			logger(ctx).WarnContext(ctx, "initial analyze failed", logx.Error(err))
		}

		ready.Store(true)

		return nil
	})

	if telegramBot != nil {
		runTelegram(ctx, g, cfg.Bot, telegramBot, dashboardService, updateClock)
	} else {
		logger(ctx).InfoContext(ctx, "telegram disabled, alerts are not delivered")
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// NewBackendClient builds the request gateway with request/response dumps in
// debug logs.
func NewBackendClient(cfg config.Backend, logFieldMaxLen int) (*backend.Client, error) {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time.LoadLocation: %w", err)
	}

	transport := httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(logFieldMaxLen),
		httpx.WithQuietPaths(cfg.StatusPath),
	)

	return backend.NewClient(
		cfg.BaseURL,
		backend.WithHTTPClient(&http.Client{ //nolint:exhaustruct
			Transport: transport,
			Timeout:   cfg.Timeout,
		}),
		backend.WithPaths(cfg.AnalyzePath, cfg.SearchPath, cfg.StatusPath),
		backend.WithLocation(location),
	), nil
}

// NewPreferenceKV opens the preference backend selected in cfg.
func NewPreferenceKV(
	ctx context.Context,
	cfg config.Config,
	redisConnector *connectors.Redis,
) (preference.KV, error) {
	switch cfg.Preferences.Backend {
	case config.PreferenceBackendRedis:
		client, err := redisConnector.Client(ctx)
		if err != nil {
			return nil, fmt.Errorf("redisConnector.Client: %w", err)
		}

		return persistence.NewRedisStore(client, cfg.Redis.KeyPrefix), nil
	default:
		store, err := persistence.NewFileStore(ctx, cfg.Preferences.FilePath)
		if err != nil {
			return nil, fmt.Errorf("persistence.NewFileStore: %w", err)
		}

		logger(ctx).InfoContext(ctx, "preferences loaded", slog.String("path", cfg.Preferences.FilePath))

		return store, nil
	}
}

func newHTTPServer(
	ctx context.Context,
	cfg config.Config,
	dashboardService *dashboard.Service,
	updateClock *worker.UpdateClock,
) *http.Server {
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.Log.FieldMaxLen, server.PolledPaths()...),
		middlewarex.ResponseLogging(masker, cfg.Log.FieldMaxLen, server.PolledPaths()...),
	)

	server.NewServer(
		server.NewDashboardServer(dashboardService, updateClock),
	).RegisterRoutes(router)

	return &http.Server{ //nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

// newTelegramBot returns nil when no token is configured.
func newTelegramBot(cfg config.Bot) (*telego.Bot, error) {
	if !cfg.Enabled() {
		return nil, nil //nolint:nilnil
	}

	telegramBot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return telegramBot, nil
}

func runTelegram(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.Bot,
	telegramBot *telego.Bot,
	dashboardService *dashboard.Service,
	updateClock *worker.UpdateClock,
) {
	alertNotifier := notifier.NewTelegramNotifier(telegramBot, cfg.ChatID)

	g.Go(func() error {
		return alertNotifier.Run(ctx, dashboardService.Alerts())
	})

	if cfg.AdminID == 0 {
		logger(ctx).InfoContext(ctx, "BOT_ADMIN_ID is empty, bot commands are disabled")
		return
	}

	commandBot := bot.New(telegramBot, cfg.AdminID, handler.New(dashboardService, updateClock))

	g.Go(func() error {
		return commandBot.Run(ctx)
	})
}
