package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/catalog"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/config"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/countcache"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/metrics"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/pgstore"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/ratelimit"
	"github.com/UKHSA-Internal/coronavirus-dashboard-api-v1/internal/transport"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()

	store, err := pgstore.Open(ctx, cfg.DatabaseURL, pgstore.PoolConfig{
		MaxOpenConns:     cfg.DatabaseMaxConnections,
		MaxIdleConns:     cfg.DatabaseMaxIdleConnections,
		ConnMaxLifetime:  cfg.DatabaseConnectionLifetime,
		StatementTimeout: cfg.StatementTimeout,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer store.Close()
	logger.Info("database connection established")

	cat := catalog.New(catalog.Env(cfg.APIEnv))
	logger.Info("catalog loaded", zap.Int("metrics", cat.Size()), zap.String("environment", cfg.APIEnv))

	cache, err := countcache.New(cfg.CountCacheSize)
	if err != nil {
		logger.Fatal("failed to build count cache", zap.Error(err))
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	server := transport.NewServer(
		cat,
		store,
		cache,
		parseRestrictedAreaTypes(cfg.RestrictedAreaTypes),
		cfg.PageSize,
		cfg.SelfURL,
		cfg.ServerLocation,
		m,
	)

	var handler http.Handler = server.Router()
	if cfg.RateLimitRPS > 0 {
		limiter := ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
		handler = limiter.Middleware(handler)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.AppPort),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.Int("port", cfg.AppPort), zap.String("environment", cfg.APIEnv))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}

func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}

func parseRestrictedAreaTypes(raw string) map[string]bool {
	out := map[string]bool{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out[t] = true
		}
	}
	return out
}
