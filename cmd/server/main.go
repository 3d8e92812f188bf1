package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/edumorph/mcp-service/internal/adapter"
	"github.com/edumorph/mcp-service/internal/api"
	"github.com/edumorph/mcp-service/internal/config"
	"github.com/edumorph/mcp-service/internal/enrich"
	"github.com/edumorph/mcp-service/internal/geoip"
	"github.com/edumorph/mcp-service/internal/llm"
	"github.com/edumorph/mcp-service/internal/middleware"
	"github.com/edumorph/mcp-service/internal/observability"
	"github.com/edumorph/mcp-service/internal/personalization"
	"github.com/edumorph/mcp-service/internal/translation"
)

func main() {
	cfg := config.Load()

	logger, err := observability.InitLoggerWithService(cfg.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to sync logger: %v\n", err)
		}
	}()

	if err := run(logger, cfg); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	observability.RegisterMetrics()
	metricsRegistry := observability.NewPrometheusRegistry()

	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracing(ctx, logger, cfg.ServiceName, cfg.TracingEndpoint, cfg.TracingSampleRate)
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer shutdown()
	}

	var geo *geoip.Resolver
	if cfg.GeoIPDB != "" {
		var err error
		geo, err = geoip.Open(cfg.GeoIPDB)
		if err != nil {
			return fmt.Errorf("failed to load geoip db: %w", err)
		}
		defer func() { _ = geo.Close() }()
	}

	enricher := enrich.New(logger, geo)

	scorer := personalization.NewClient(cfg.MLServiceURL, cfg.MLServiceTimeout, logger, metricsRegistry)
	generator := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIURL, cfg.OpenAIModel, cfg.OpenAITemperature, cfg.OpenAITimeout, logger, metricsRegistry)
	if !generator.Configured() {
		logger.Warn("no generation credential configured, serving fallback text")
	}

	templateAdapter := adapter.New(logger, metricsRegistry, rand.NewSource(time.Now().UnixNano()))
	translator := translation.New(generator, logger, metricsRegistry)

	srvDeps := api.NewServer(logger, enricher, scorer, generator, templateAdapter, translator, metricsRegistry, cfg)

	r := mux.NewRouter()
	srvDeps.Routes(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithTraceLogger(logger))

	var handler http.Handler = r
	if cfg.TracingEnabled {
		handler = otelhttp.NewHandler(r, cfg.ServiceName)
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("Adaptation server running", zap.String("addr", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listen: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
