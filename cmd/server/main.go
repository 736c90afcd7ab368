// Command server runs the command engine behind its HTTP API. APP_PROFILE
// selects configs/{profile}.yaml; SIGINT or SIGTERM drains in-flight
// commands and stops it.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/command-engine/internal/adapters/http"
	"github.com/jsamuelsen11/command-engine/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/command-engine/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/command-engine/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/command-engine/internal/adapters/notify"
	"github.com/jsamuelsen11/command-engine/internal/app"
	"github.com/jsamuelsen11/command-engine/internal/domain/canvas"
	"github.com/jsamuelsen11/command-engine/internal/platform/config"
	"github.com/jsamuelsen11/command-engine/internal/platform/health"
	"github.com/jsamuelsen11/command-engine/internal/platform/httpclient"
	"github.com/jsamuelsen11/command-engine/internal/platform/logging"
	"github.com/jsamuelsen11/command-engine/internal/platform/telemetry"
	"github.com/jsamuelsen11/command-engine/internal/ports"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is required (local, dev, qa or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otel := &telemetry.Providers{}
	if cfg.Telemetry.Enabled {
		tc := cfg.Telemetry
		if otel, err = telemetry.Setup(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint); err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
	}
	defer flush(otel, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(injector, cfg, logger)

	server, err := start(ctx, injector)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// The container stops the server before the engine it depends on, so
	// commands already holding the gate finish before the engine is disposed.
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if report := injector.ShutdownWithContext(drainCtx); !report.Succeed {
		logger.Error("container shutdown error", slog.String("error", report.Error()))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

// start resolves the object graph, subscribes the engine to its request
// signals and registers the health checks. The server is returned unstarted.
func start(ctx context.Context, injector do.Injector) (*adapthttp.Server, error) {
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return nil, fmt.Errorf("resolving server: %w", err)
	}

	engine := do.MustInvoke[*app.Engine](injector)
	if err := engine.Init(ctx); err != nil {
		return nil, fmt.Errorf("starting command engine: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(engine)
	registry.Register(do.MustInvoke[*acl.ExportClient](injector))
	return server, nil
}

func flush(otel *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Render API.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, acl.ServiceName, metrics, logging.Component(logger, "httpclient")), nil
	})
	do.Provide(injector, func(i do.Injector) (*acl.ExportClient, error) {
		return acl.NewExportClient(do.MustInvoke[*httpclient.Client](i), logging.Component(logger, "export")), nil
	})

	// Engine and the document it edits.
	do.Provide(injector, func(_ do.Injector) (*notify.Bus, error) {
		return notify.NewBus(&cfg.Notify, logging.Component(logger, "notify")), nil
	})
	do.Provide(injector, func(_ do.Injector) (*canvas.Store, error) {
		return canvas.NewStore(canvas.NewDocument()), nil
	})
	do.Provide(injector, func(i do.Injector) (*app.Engine, error) {
		bus := do.MustInvoke[*notify.Bus](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewEngine(&cfg.Engine, bus, metrics, logging.Component(logger, "engine")), nil
	})
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// HTTP surface.
	do.Provide(injector, func(i do.Injector) (*handlers.CommandHandler, error) {
		return handlers.NewCommandHandler(
			do.MustInvoke[*app.Engine](i),
			do.MustInvoke[*canvas.Store](i),
			do.MustInvoke[*acl.ExportClient](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.HistoryHandler, error) {
		return handlers.NewHistoryHandler(do.MustInvoke[*app.Engine](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.CanvasHandler, error) {
		return handlers.NewCanvasHandler(do.MustInvoke[*canvas.Store](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		httpLog := logging.Component(logger, "http")
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.CommandHandler](i),
			do.MustInvoke[*handlers.HistoryHandler](i),
			do.MustInvoke[*handlers.CanvasHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(httpLog),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(httpLog),
			middleware.Deadline(cfg.Server.WriteTimeout),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logging.Component(logger, "http")), nil
	})
}
