package movie

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/reelscout/internal/domain"
)

// Discoverer runs the provider discovery query. It is not gated.
type Discoverer struct {
	provider MovieDiscoverer
}

// NewDiscoverer creates a discovery stage.
func NewDiscoverer(provider MovieDiscoverer) *Discoverer {
	return &Discoverer{provider: provider}
}

// Discover returns the listing summaries matching ids in provider order.
func (d *Discoverer) Discover(ctx context.Context, ids domain.ResolvedIDs) ([]domain.ListingSummary, error) {
	summaries, err := d.provider.Discover(ctx, domain.NewDiscoverQuery(ids))
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	return summaries, nil
}
