package movie

import (
	"context"

	"github.com/kailas-cloud/reelscout/internal/domain"
)

// GenreLister fetches the provider genre catalog.
type GenreLister interface {
	Genres(ctx context.Context) ([]domain.Genre, error)
}

// PeopleSearcher looks people up by name, best match first.
type PeopleSearcher interface {
	SearchPerson(ctx context.Context, name string) ([]int64, error)
}

// MovieDiscoverer runs discovery queries.
type MovieDiscoverer interface {
	Discover(ctx context.Context, q domain.DiscoverQuery) ([]domain.ListingSummary, error)
}

// DetailFetcher fetches per-movie credits and metadata.
type DetailFetcher interface {
	Credits(ctx context.Context, movieID int64) (domain.Credits, error)
	Detail(ctx context.Context, movieID int64) (domain.MovieDetail, error)
}

// Provider is the full metadata provider contract used by the pipeline.
type Provider interface {
	GenreLister
	PeopleSearcher
	MovieDiscoverer
	DetailFetcher
}
