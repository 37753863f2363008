package movie

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/reelscout/internal/domain"
	"github.com/kailas-cloud/reelscout/internal/rategate"
)

// DefaultImageBaseURL prefixes poster paths.
const DefaultImageBaseURL = "http://image.tmdb.org/t/p/w780"

// Aggregator fetches credits and detail for every summary through the gate and
// maps the survivors of the director filter into records.
type Aggregator struct {
	fetcher      DetailFetcher
	gate         rategate.Doer
	imageBaseURL string
}

// NewAggregator creates an aggregation stage.
func NewAggregator(fetcher DetailFetcher, gate rategate.Doer) *Aggregator {
	return &Aggregator{fetcher: fetcher, gate: gate, imageBaseURL: DefaultImageBaseURL}
}

// WithImageBaseURL overrides the poster URL prefix.
func (a *Aggregator) WithImageBaseURL(u string) *Aggregator {
	if u != "" {
		a.imageBaseURL = u
	}
	return a
}

// Aggregate returns records in discovery order. When allowedDirectors is present, a movie is
// kept only if every one of its directors is in the set. summaries[i].BackgroundImageURL is set
// for every movie with a poster, filtered or not. Any fetch failure fails the whole call.
func (a *Aggregator) Aggregate(
	ctx context.Context, summaries []domain.ListingSummary, allowedDirectors domain.IDSet,
) ([]domain.Record, error) {
	credits := make([]domain.Credits, len(summaries))
	details := make([]domain.MovieDetail, len(summaries))

	g, gctx := errgroup.WithContext(ctx)
	for i := range summaries {
		id := summaries[i].ID
		g.Go(func() error {
			c, err := rategate.Dispatch(gctx, a.gate, func(ctx context.Context) (domain.Credits, error) {
				return a.fetcher.Credits(ctx, id)
			})
			if err != nil {
				return fmt.Errorf("credits of movie %d: %w", id, err)
			}
			credits[i] = c
			return nil
		})
		g.Go(func() error {
			d, err := rategate.Dispatch(gctx, a.gate, func(ctx context.Context) (domain.MovieDetail, error) {
				return a.fetcher.Detail(ctx, id)
			})
			if err != nil {
				return fmt.Errorf("detail of movie %d: %w", id, err)
			}
			details[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(summaries))
	for i := range summaries {
		joined := domain.JoinedDetail{Credits: credits[i], Detail: details[i]}
		if joined.Detail.PosterPath != "" {
			summaries[i].BackgroundImageURL = a.imageBaseURL + joined.Detail.PosterPath
		}
		if allowedDirectors.Present() && !joined.DirectedOnlyBy(allowedDirectors) {
			continue
		}
		records = append(records, domain.NewRecord(joined))
	}
	return records, nil
}
