// Package main is the entrypoint for the TailWatch server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tailwatch/tailwatch/internal/ai"
	"github.com/tailwatch/tailwatch/internal/api"
	"github.com/tailwatch/tailwatch/internal/api/handler"
	mw "github.com/tailwatch/tailwatch/internal/api/middleware"
	"github.com/tailwatch/tailwatch/internal/api/response"
	"github.com/tailwatch/tailwatch/internal/cache"
	"github.com/tailwatch/tailwatch/internal/config"
	"github.com/tailwatch/tailwatch/internal/dedup"
	"github.com/tailwatch/tailwatch/internal/metrics"
	"github.com/tailwatch/tailwatch/internal/notify"
	"github.com/tailwatch/tailwatch/internal/pipeline"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config — fail fast on invalid config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "ai_provider", cfg.AI.Provider, "env", cfg.Server.Env,
		"dedup_window", cfg.Dedup.Window)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Create Redis cache (dedup store + rate limiter)
	redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("create redis cache: %w", err)
	}
	defer redisCache.Close()

	if err := redisCache.Ping(ctx); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	slog.Info("redis connected")

	// 3. Create AI provider and two-stage analysis engine
	aiProvider, err := ai.NewProvider(cfg.AI)
	if err != nil {
		return fmt.Errorf("create AI provider: %w", err)
	}
	analysisModel, summaryModel := ai.ModelsFor(cfg.AI)
	engine := ai.NewEngine(aiProvider, analysisModel, summaryModel, cfg.AI.InferenceTimeout)
	slog.Info("AI provider initialized", "provider", aiProvider.Name(),
		"analysis_model", analysisModel, "summary_model", summaryModel)

	// 4. Create webhook sink and dedup adapter
	sink := notify.NewWebhookClient(cfg.Slack.WebhookURL, cfg.Slack.Timeout)
	store := dedup.New(redisCache, cfg.Dedup.Window)

	// 5. Register metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	// 6. Build pipeline
	pipe := pipeline.New(store, engine, sink, cfg.Slack.Username, cfg.Slack.IconEmoji, m)

	// 7. Build router with dependencies
	deps := api.Dependencies{
		Auth:      mw.NewAuth(cfg.Server.APIToken),
		RateLimit: mw.NewRateLimit(redisCache, cfg.Server.RateLimitPerMin),

		HealthHandler:  healthHandler(redisCache),
		IngestHandler:  handler.NewIngestHandler(pipe),
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	router := api.NewRouter(deps)

	// 8. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// healthHandler checks dedup-store connectivity. A degraded store is
// reported but does not fail the check: the pipeline runs fail-open
// without it.
func healthHandler(c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cacheStatus := "ok"
		if err := c.Ping(r.Context()); err != nil {
			cacheStatus = "degraded"
		}

		response.JSON(w, map[string]any{
			"status": "ok",
			"services": map[string]string{
				"cache": cacheStatus,
			},
		})
	}
}
