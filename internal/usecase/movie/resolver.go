package movie

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/reelscout/internal/domain"
	"github.com/kailas-cloud/reelscout/internal/rategate"
)

// Resolver turns free-text names into provider ids.
// The genre catalog is fetched once, through the gate, when the resolver is created.
type Resolver struct {
	people PeopleSearcher
	logger *zap.Logger

	catalogDone chan struct{}
	catalog     domain.GenreCatalog
	catalogErr  error
}

// NewResolver creates a resolver and starts the catalog fetch. The fetch keeps ctx values
// but is not cancelled with it.
func NewResolver(
	ctx context.Context, people PeopleSearcher, genres GenreLister,
	gate rategate.Doer, logger *zap.Logger,
) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{
		people:      people,
		logger:      logger,
		catalogDone: make(chan struct{}),
	}
	go r.loadCatalog(context.WithoutCancel(ctx), genres, gate)
	return r
}

func (r *Resolver) loadCatalog(ctx context.Context, genres GenreLister, gate rategate.Doer) {
	defer close(r.catalogDone)

	list, err := rategate.Dispatch(ctx, gate, genres.Genres)
	if err != nil {
		r.catalogErr = fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
		r.logger.Error("Genre catalog fetch failed", zap.Error(err))
		return
	}
	r.catalog = domain.NewGenreCatalog(list)
	r.logger.Debug("Genre catalog loaded", zap.Int("genres", r.catalog.Len()))
}

// Catalog waits for the memoized catalog.
func (r *Resolver) Catalog(ctx context.Context) (domain.GenreCatalog, error) {
	select {
	case <-ctx.Done():
		return domain.GenreCatalog{}, ctx.Err()
	case <-r.catalogDone:
		return r.catalog, r.catalogErr
	}
}

// CatalogState reports without blocking whether the catalog fetch finished and its outcome.
func (r *Resolver) CatalogState() (ready bool, err error) {
	select {
	case <-r.catalogDone:
		return true, r.catalogErr
	default:
		return false, nil
	}
}

// ResolvePeople searches every name concurrently and keeps the top hit of each.
// Unmatched names are dropped; the result follows input order. The first failure wins
// and cancels the remaining searches.
func (r *Resolver) ResolvePeople(ctx context.Context, names []string) (domain.IDSet, error) {
	hits := make([]int64, len(names))
	found := make([]bool, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			ids, err := r.people.SearchPerson(gctx, name)
			if err != nil {
				return fmt.Errorf("search person %q: %w", name, err)
			}
			if len(ids) > 0 {
				hits[i] = ids[0]
				found[i] = true
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.NoIDs(), err
	}

	out := make([]int64, 0, len(names))
	for i, ok := range found {
		if ok {
			out = append(out, hits[i])
		} else {
			r.logger.Debug("Person not found", zap.String("name", names[i]))
		}
	}
	return domain.SomeIDs(out...), nil
}

// ResolveGenres maps names onto catalog ids, first catalog match per name. Unmatched names are dropped.
func (r *Resolver) ResolveGenres(ctx context.Context, names []string) (domain.IDSet, error) {
	catalog, err := r.Catalog(ctx)
	if err != nil {
		return domain.NoIDs(), err
	}

	out := make([]int64, 0, len(names))
	for _, name := range names {
		if g, ok := catalog.Lookup(name); ok {
			out = append(out, g.ID)
		}
	}
	return domain.SomeIDs(out...), nil
}
