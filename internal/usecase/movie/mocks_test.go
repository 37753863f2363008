package movie

import (
	"context"
	"errors"
	"sync"

	"github.com/kailas-cloud/reelscout/internal/domain"
)

var errProvider = errors.New("provider down")

type gatedKey struct{}

// countingGate admits everything and marks the context so the provider can tell gated calls apart.
type countingGate struct {
	mu    sync.Mutex
	calls int
}

func (g *countingGate) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	return fn(context.WithValue(ctx, gatedKey{}, true))
}

func (g *countingGate) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type mockProvider struct {
	mu sync.Mutex

	genres    []domain.Genre
	genresErr error
	// genresGate blocks the catalog fetch until closed when set.
	genresGate chan struct{}

	people    map[string][]int64
	peopleErr map[string]error

	movies      []domain.ListingSummary
	discoverErr error

	credits    map[int64]domain.Credits
	details    map[int64]domain.MovieDetail
	creditsErr map[int64]error

	genreCalls    int
	searched      []string
	discoverCalls []domain.DiscoverQuery
	ungated int
	gatedSearch   int
}

func (m *mockProvider) Genres(ctx context.Context) ([]domain.Genre, error) {
	if m.genresGate != nil {
		<-m.genresGate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.genreCalls++
	if ctx.Value(gatedKey{}) == nil {
		m.ungated++
	}
	return m.genres, m.genresErr
}

func (m *mockProvider) SearchPerson(ctx context.Context, name string) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searched = append(m.searched, name)
	if ctx.Value(gatedKey{}) != nil {
		m.gatedSearch++
	}
	if err := m.peopleErr[name]; err != nil {
		return nil, err
	}
	return m.people[name], nil
}

func (m *mockProvider) Discover(ctx context.Context, q domain.DiscoverQuery) ([]domain.ListingSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.discoverCalls = append(m.discoverCalls, q)
	if ctx.Value(gatedKey{}) != nil {
		m.gatedSearch++
	}
	if m.discoverErr != nil {
		return nil, m.discoverErr
	}
	out := make([]domain.ListingSummary, len(m.movies))
	copy(out, m.movies)
	return out, nil
}

func (m *mockProvider) Credits(ctx context.Context, id int64) (domain.Credits, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ctx.Value(gatedKey{}) == nil {
		m.ungated++
	}
	if err := m.creditsErr[id]; err != nil {
		return domain.Credits{}, err
	}
	return m.credits[id], nil
}

func (m *mockProvider) Detail(ctx context.Context, id int64) (domain.MovieDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ctx.Value(gatedKey{}) == nil {
		m.ungated++
	}
	return m.details[id], nil
}

// addMovie registers a discoverable movie with its directors (id -> name).
func (m *mockProvider) addMovie(id int64, title, poster string, directors map[int64]string) {
	if m.credits == nil {
		m.credits = map[int64]domain.Credits{}
		m.details = map[int64]domain.MovieDetail{}
	}
	m.movies = append(m.movies, domain.ListingSummary{ID: id, Title: title})

	var crew []domain.CrewMember
	for did, name := range directors {
		crew = append(crew, domain.CrewMember{ID: did, Name: name, Job: domain.DirectorJob})
	}
	crew = append(crew, domain.CrewMember{ID: 9000 + id, Name: "Composer", Job: "Original Music Composer"})
	m.credits[id] = domain.Credits{
		Cast: []domain.CastMember{{ID: 1, Name: "Lead"}},
		Crew: crew,
	}
	m.details[id] = domain.MovieDetail{
		ID:         id,
		IMDbID:     "tt" + title,
		Title:      title,
		Genres:     []domain.Genre{{ID: 18, Name: "Drama"}},
		PosterPath: poster,
	}
}
