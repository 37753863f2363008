package movie

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/reelscout/internal/domain"
	logpkg "github.com/kailas-cloud/reelscout/internal/logger"
	"github.com/kailas-cloud/reelscout/internal/metrics"
	"github.com/kailas-cloud/reelscout/internal/rategate"
)

// Service runs the query pipeline: resolve, discover, aggregate, truncate.
type Service struct {
	resolver   *Resolver
	discoverer *Discoverer
	aggregator *Aggregator
	logger     *zap.Logger
}

// New creates the pipeline and starts the genre catalog fetch.
// gate throttles catalog, credits and detail requests; people search and discovery bypass it.
func New(ctx context.Context, provider Provider, gate rategate.Doer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		resolver:   NewResolver(ctx, provider, provider, gate, logger),
		discoverer: NewDiscoverer(provider),
		aggregator: NewAggregator(provider, gate),
		logger:     logger,
	}
}

// WithImageBaseURL overrides the poster URL prefix.
func (s *Service) WithImageBaseURL(u string) *Service {
	s.aggregator.WithImageBaseURL(u)
	return s
}

// Resolver exposes the entity resolver (catalog state for health checks).
func (s *Service) Resolver() *Resolver { return s.resolver }

// Execute honors only criteria[0]. limit <= 0 means no limit; truncation happens after the
// director filter.
func (s *Service) Execute(ctx context.Context, criteria []domain.Criteria, limit int) ([]domain.Record, error) {
	records, err := s.execute(ctx, criteria, limit)
	if err != nil {
		metrics.PipelineExecutionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.PipelineExecutionsTotal.WithLabelValues("success").Inc()
	return records, nil
}

func (s *Service) execute(ctx context.Context, criteria []domain.Criteria, limit int) ([]domain.Record, error) {
	if len(criteria) == 0 {
		return nil, fmt.Errorf("%w: empty criteria list", domain.ErrInvalidCriteria)
	}
	logger := logpkg.FromContextOr(ctx, s.logger)
	if len(criteria) > 1 {
		logger.Debug("Ignoring extra criteria", zap.Int("ignored", len(criteria)-1))
	}

	start := time.Now()

	ids, err := s.resolve(ctx, criteria[0])
	if err != nil {
		return nil, fmt.Errorf("resolve criteria: %w", err)
	}
	resolved := time.Now()

	summaries, err := s.discoverer.Discover(ctx, ids)
	if err != nil {
		return nil, err
	}
	discovered := time.Now()

	records, err := s.aggregator.Aggregate(ctx, summaries, ids.Director)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	kept := len(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	logger.Debug("Pipeline stages completed",
		zap.Duration("resolve", resolved.Sub(start)),
		zap.Duration("discover", discovered.Sub(resolved)),
		zap.Duration("aggregate", time.Since(discovered)),
	)
	logger.Info("Pipeline executed",
		zap.Int("discovered", len(summaries)),
		zap.Int("kept", kept),
		zap.Int("returned", len(records)),
		zap.Int("limit", limit),
		zap.Duration("duration", time.Since(start)),
	)

	return records, nil
}

// resolve runs the present criterion kinds concurrently; absent kinds stay absent.
func (s *Service) resolve(ctx context.Context, c domain.Criteria) (domain.ResolvedIDs, error) {
	var ids domain.ResolvedIDs

	g, gctx := errgroup.WithContext(ctx)
	if c.Cast != nil {
		g.Go(func() error {
			set, err := s.resolver.ResolvePeople(gctx, c.Cast)
			ids.Cast = set
			return err
		})
	}
	if c.Director != nil {
		g.Go(func() error {
			set, err := s.resolver.ResolvePeople(gctx, c.Director)
			ids.Director = set
			return err
		})
	}
	if c.Category != nil {
		g.Go(func() error {
			set, err := s.resolver.ResolveGenres(gctx, c.Category)
			ids.Category = set
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ResolvedIDs{}, err
	}
	return ids, nil
}
