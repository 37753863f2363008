package reelscout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/kailas-cloud/reelscout/internal/db/redis"
	"github.com/kailas-cloud/reelscout/internal/domain"
	"github.com/kailas-cloud/reelscout/internal/rategate"
	"github.com/kailas-cloud/reelscout/internal/transport/tmdb"
	healthuc "github.com/kailas-cloud/reelscout/internal/usecase/health"
	movieuc "github.com/kailas-cloud/reelscout/internal/usecase/movie"
)

const defaultReadinessTimeout = 10 * time.Second

// pipelineUseCase is the internal interface for query execution.
type pipelineUseCase interface {
	Execute(ctx context.Context, criteria []domain.Criteria, limit int) ([]domain.Record, error)
}

// Client is the reelscout SDK entry point.
type Client struct {
	store     *dbRedis.Store
	pipeline  pipelineUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client and starts fetching the genre catalog.
// ctx bounds the Redis readiness check when WithRedisWindow is used.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.apiKey == "" {
		return nil, errors.New("reelscout: provider api key required (use WithAPIKey)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var (
		store  *dbRedis.Store
		window rategate.WindowStore
	)
	if cfg.redisAddr != "" {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    []string{cfg.redisAddr},
			Password: cfg.redisPassword,
		})
		if err != nil {
			return nil, fmt.Errorf("reelscout: create redis store: %w", err)
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("reelscout: redis not ready: %w", err)
		}
		window = dbRedis.NewWindow(store, cfg.redisKey, cfg.capacity, cfg.window)
	} else {
		window = rategate.NewMemoryWindow(cfg.capacity, cfg.window)
	}

	return wireClient(ctx, cfg, store, window, obs), nil
}

func wireClient(
	ctx context.Context, cfg *clientConfig,
	store *dbRedis.Store, window rategate.WindowStore, obs *observer,
) *Client {
	logger := zap.NewNop()
	provider := tmdb.NewClient(&tmdb.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     cfg.apiKey,
		HTTPClient: cfg.httpClient,
		Logger:     logger,
	})
	gate := rategate.New("provider", window, logger)
	pipeline := movieuc.New(ctx, provider, gate, logger).WithImageBaseURL(cfg.imageBaseURL)

	// nil interface, not a typed nil pointer
	var pinger healthuc.DBPinger
	if store != nil {
		pinger = store
	}

	return &Client{
		store:     store,
		pipeline:  pipeline,
		healthSvc: healthuc.New(provider, pipeline.Resolver(), pinger),
		obs:       obs,
	}
}

// Execute finds movies matching criteria[0] and returns at most limit records
// (limit <= 0 means no limit). The limit applies after the director filter.
func (c *Client) Execute(ctx context.Context, criteria []Criteria, limit int) (_ []Record, err error) {
	start := time.Now()
	var records []domain.Record
	defer func() { c.obs.observe("execute", start, err, "limit", limit, "results", len(records)) }()

	records, err = c.pipeline.Execute(ctx, criteriaToDomain(criteria), limit)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}

	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = recordFromDomain(r)
	}
	return out, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}
