package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pravinmishra000/freshoz-geo/internal/api"
	"github.com/pravinmishra000/freshoz-geo/internal/config"
	"github.com/pravinmishra000/freshoz-geo/internal/geocoding"
	"github.com/pravinmishra000/freshoz-geo/internal/metrics"
	"github.com/pravinmishra000/freshoz-geo/internal/models"
	"github.com/pravinmishra000/freshoz-geo/internal/repository"
	"github.com/pravinmishra000/freshoz-geo/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

func main() {
	// Canceled on SIGINT/SIGTERM for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(ctx,
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	repo := repository.NewRepository(dtb, logger)

	providerConfig := geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(cfg.ProviderType),
		APIKey:    cfg.APIKey,
		RateLimit: cfg.RateLimit,
		Logger:    logger,
		CacheTTL:  cfg.CacheTTL,
		Metrics:   appMetrics,
	}

	if cfg.Redis.Addr != "" {
		redisClient, errRedis := geocoding.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if errRedis != nil {
			log.Fatalf("Failed to connect to Redis: %v", errRedis)
		}
		defer redisClient.Close()

		providerConfig.Cache = geocoding.NewRedisCache(redisClient)
		logger.InfoContext(ctx, "Geocoding cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.CacheTTL)
	}

	geoProvider, err := geocoding.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}

	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.ProviderType)

	resolver := geocoding.NewResolver(geoProvider, cfg.ProviderType, logger, appMetrics)
	store := models.Coordinates{Latitude: cfg.Store.Latitude, Longitude: cfg.Store.Longitude}

	deliveryService := service.NewDeliveryService(
		logger,
		repo,
		resolver,
		store,
		appMetrics,
		cfg.Workers,
		cfg.Interval,
	)

	handler := api.NewHandler(logger, resolver, store, cfg.DeliveryRadiusKm)
	router := api.NewRouter(logger, handler, reg, dtb)

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	var serverErr error
	serverDone := make(chan struct{})
	go func() {
		defer close(serverDone)
		if serverErr = startServer(ctx, logger, router, cfg.Port); serverErr != nil {
			stop()
		}
	}()
	go deliveryService.Run(ctx)

	<-ctx.Done()

	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")
	<-serverDone
	if serverErr != nil {
		log.Fatalf("API server failed: %v", serverErr)
	}
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// startServer serves the API, health check and metrics endpoints until ctx is canceled.
// It returns an error when the server cannot start or stops unexpectedly.
func startServer(ctx context.Context, log *slog.Logger, handler http.Handler, port int) error {
	const (
		readTimeout     = 5 * time.Second
		writeTimeout    = 10 * time.Second
		shutdownTimeout = 5 * time.Second
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(shutdownCtx, "API server shutdown failed", "error", err)
		}
	}()

	log.InfoContext(ctx, "Starting API server", "port", port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on port %d: %w", port, err)
	}
	<-shutdownDone

	return nil
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	dropTime := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	}

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:       slog.LevelWarn,
			ReplaceAttr: dropTime,
		}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:       slog.LevelError,
			ReplaceAttr: dropTime,
		}))

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
