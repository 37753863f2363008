// Package rategate throttles outbound provider calls with a sliding window.
package rategate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/reelscout/internal/metrics"
)

const (
	// DefaultCapacity is the number of dispatches admitted per window.
	DefaultCapacity = 30
	// DefaultWindow is the rolling window length.
	DefaultWindow = 11 * time.Second
)

// WindowStore owns the dispatch timestamps and decides admission.
// Reserve either records now and returns 0, or records nothing and returns the time to wait
// before the decision should be retried. Implementations must serialize mutation.
type WindowStore interface {
	Reserve(ctx context.Context, now time.Time) (time.Duration, error)
}

// Clock is the time source used by the gate.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Doer runs a call once admitted. *Gate implements it.
type Doer interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ Doer = (*Gate)(nil)

// Gate admits calls through a WindowStore, deferring them instead of rejecting.
type Gate struct {
	name   string
	store  WindowStore
	clock  Clock
	logger *zap.Logger
}

// New creates a gate. name labels metrics and logs.
func New(name string, store WindowStore, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{
		name:   name,
		store:  store,
		clock:  SystemClock,
		logger: logger,
	}
}

// WithClock replaces the time source.
func (g *Gate) WithClock(c Clock) *Gate {
	g.clock = c
	return g
}

// Do waits for a dispatch slot and runs fn. fn's error is returned unchanged and never retried;
// only deferrals loop. A cancelled ctx aborts a pending deferral.
func (g *Gate) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	start := g.clock.Now()
	for attempt := 0; ; attempt++ {
		wait, err := g.store.Reserve(ctx, g.clock.Now())
		if err != nil {
			return fmt.Errorf("reserve dispatch slot: %w", err)
		}
		if wait <= 0 {
			break
		}

		metrics.RateGateDeferralsTotal.WithLabelValues(g.name).Inc()
		g.logger.Debug("Dispatch deferred",
			zap.String("gate", g.name),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.clock.After(wait):
		}
	}

	metrics.RateGateDispatchTotal.WithLabelValues(g.name).Inc()
	metrics.RateGateWait.WithLabelValues(g.name).Observe(g.clock.Now().Sub(start).Seconds())

	return fn(ctx)
}

// Dispatch runs fn through g and returns its value.
func Dispatch[T any](ctx context.Context, g Doer, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := g.Do(ctx, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
