package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/reelscout/internal/config"
	dbRedis "github.com/kailas-cloud/reelscout/internal/db/redis"
	logpkg "github.com/kailas-cloud/reelscout/internal/logger"
	"github.com/kailas-cloud/reelscout/internal/metrics"
	"github.com/kailas-cloud/reelscout/internal/rategate"
	chiTransport "github.com/kailas-cloud/reelscout/internal/transport/chi"
	"github.com/kailas-cloud/reelscout/internal/transport/tmdb"
	healthuc "github.com/kailas-cloud/reelscout/internal/usecase/health"
	movieuc "github.com/kailas-cloud/reelscout/internal/usecase/movie"
	"github.com/kailas-cloud/reelscout/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting reelscout API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("rate_gate_backend", cfg.RateGate.Backend),
		zap.Int("rate_gate_capacity", cfg.RateGate.Capacity),
		zap.Duration("rate_gate_window", cfg.RateGate.Window()),
	)

	// Register metrics explicitly (no init())
	metrics.RegisterProviderMetrics()
	metrics.RegisterHTTPMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := tmdb.NewClient(&tmdb.Config{
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.APIKey,
		Timeout: time.Duration(cfg.Provider.TimeoutSec) * time.Second,
		Logger:  logger,
	})

	// Pass nil interface (not typed nil pointer!) when the window lives in memory.
	var storePinger healthuc.DBPinger
	var window rategate.WindowStore
	switch cfg.RateGate.Backend {
	case config.BackendRedis:
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create window store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Window store not ready", zap.Error(err))
		}
		logger.Info("Connected to window store", zap.Strings("addrs", cfg.Database.Addrs))

		window = dbRedis.NewWindow(store, cfg.RateGate.Key, cfg.RateGate.Capacity, cfg.RateGate.Window())
		storePinger = store
	default:
		window = rategate.NewMemoryWindow(cfg.RateGate.Capacity, cfg.RateGate.Window())
	}

	gate := rategate.New("provider", window, logger)

	// Construction starts the genre catalog fetch.
	pipeline := movieuc.New(ctx, provider, gate, logger).WithImageBaseURL(cfg.Provider.ImageBaseURL)
	healthSvc := healthuc.New(provider, pipeline.Resolver(), storePinger)

	var limiter *chiTransport.RateLimiter
	if cfg.Inbound.RPS > 0 {
		limiter = chiTransport.NewRateLimiter(cfg.Inbound.RPS, cfg.Inbound.Burst)
		go limiter.Run(ctx)
	}

	server := chiTransport.NewServer(pipeline, healthSvc, logger)
	r := chiTransport.NewRouter(server, logger, chiTransport.RouterConfig{
		APIKeys: cfg.Auth.APIKeys,
		Limiter: limiter,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
