package movie

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/reelscout/internal/domain"
)

func newTestService(p *mockProvider, gate *countingGate) *Service {
	return New(context.Background(), p, gate, zap.NewNop())
}

func TestExecute_EmptyCriteriaList(t *testing.T) {
	s := newTestService(&mockProvider{}, &countingGate{})

	_, err := s.Execute(context.Background(), nil, 0)
	if !errors.Is(err, domain.ErrInvalidCriteria) {
		t.Fatalf("expected ErrInvalidCriteria, got %v", err)
	}
}

func TestExecute_FullPipeline(t *testing.T) {
	p := &mockProvider{
		genres: []domain.Genre{{ID: 18, Name: "Drama"}},
		people: map[string][]int64{"Frank Darabont": {4027}, "Tim Robbins": {504}},
	}
	p.addMovie(278, "Shawshank", "/s.jpg", map[int64]string{4027: "Frank Darabont"})
	p.addMovie(279, "Other", "", map[int64]string{1: "Someone"})
	s := newTestService(p, &countingGate{})

	records, err := s.Execute(context.Background(), []domain.Criteria{{
		Director: []string{"Frank Darabont"},
		Cast:     []string{"Tim Robbins"},
		Category: []string{"drama"},
	}}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ID != 278 {
		t.Fatalf("expected only Shawshank, got %+v", records)
	}

	q := p.discoverCalls[0]
	if q.Crew.Join("|") != "4027" || q.Cast.Join("|") != "504" || q.Genres.Join("|") != "18" {
		t.Fatalf("unexpected discovery query %+v", q)
	}
	if p.gatedSearch != 0 {
		t.Fatalf("search and discovery must bypass the gate")
	}
}

func TestExecute_OnlyFirstCriteriaHonored(t *testing.T) {
	p := &mockProvider{people: map[string][]int64{"A": {1}, "B": {2}}}
	s := newTestService(p, &countingGate{})

	_, err := s.Execute(context.Background(), []domain.Criteria{
		{Cast: []string{"A"}},
		{Cast: []string{"B"}, Director: []string{"B"}},
	}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.searched) != 1 || p.searched[0] != "A" {
		t.Fatalf("expected only A searched, got %v", p.searched)
	}
	q := p.discoverCalls[0]
	if q.Crew.Present() || q.Genres.Present() {
		t.Fatalf("absent kinds must stay absent, got %+v", q)
	}
}

func TestExecute_LimitAppliesAfterFilter(t *testing.T) {
	p := &mockProvider{people: map[string][]int64{"Allowed": {10}}}
	p.addMovie(1, "x1", "", map[int64]string{99: "Other"})
	p.addMovie(2, "k1", "", map[int64]string{10: "Allowed"})
	p.addMovie(3, "x2", "", map[int64]string{99: "Other"})
	p.addMovie(4, "k2", "", map[int64]string{10: "Allowed"})
	p.addMovie(5, "k3", "", map[int64]string{10: "Allowed"})
	s := newTestService(p, &countingGate{})

	records, err := s.Execute(context.Background(), []domain.Criteria{{Director: []string{"Allowed"}}}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 || records[0].Name != "k1" || records[1].Name != "k2" {
		t.Fatalf("expected [k1 k2], got %+v", records)
	}
}

func TestExecute_NoLimit(t *testing.T) {
	p := &mockProvider{}
	for i := int64(1); i <= 3; i++ {
		p.addMovie(i, "m", "", nil)
	}
	s := newTestService(p, &countingGate{})

	records, err := s.Execute(context.Background(), []domain.Criteria{{}}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if len(p.discoverCalls[0].Params()) != 0 {
		t.Fatalf("empty criteria must send no filters, got %v", p.discoverCalls[0].Params())
	}
}

func TestExecute_ResolutionFailureSkipsDiscovery(t *testing.T) {
	p := &mockProvider{peopleErr: map[string]error{"A": errProvider}}
	s := newTestService(p, &countingGate{})

	_, err := s.Execute(context.Background(), []domain.Criteria{{Cast: []string{"A"}}}, 0)
	if !errors.Is(err, errProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if len(p.discoverCalls) != 0 {
		t.Fatal("discovery must not run after a failed resolution")
	}
}

func TestExecute_DiscoveryFailure(t *testing.T) {
	p := &mockProvider{discoverErr: errProvider}
	s := newTestService(p, &countingGate{})

	if _, err := s.Execute(context.Background(), []domain.Criteria{{}}, 0); !errors.Is(err, errProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestExecute_CatalogFailureOnlyAffectsGenreQueries(t *testing.T) {
	p := &mockProvider{genresErr: errProvider, people: map[string][]int64{"A": {1}}}
	s := newTestService(p, &countingGate{})

	if _, err := s.Execute(context.Background(), []domain.Criteria{{Category: []string{"drama"}}}, 0); !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
	if _, err := s.Execute(context.Background(), []domain.Criteria{{Cast: []string{"A"}}}, 0); err != nil {
		t.Fatalf("cast-only query must not depend on the catalog: %v", err)
	}
}

func TestExecute_UnmatchedDirectorsExcludeDirectedMovies(t *testing.T) {
	p := &mockProvider{}
	p.addMovie(1, "directed", "", map[int64]string{10: "A"})
	p.addMovie(2, "undirected", "", nil)
	s := newTestService(p, &countingGate{})

	records, err := s.Execute(context.Background(), []domain.Criteria{{Director: []string{"Unknown"}}}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := p.discoverCalls[0].Params()["with_crew"]; !ok || v != "" {
		t.Fatalf("expected empty with_crew, got %q (present=%v)", v, ok)
	}
	if len(records) != 1 || records[0].Name != "undirected" {
		t.Fatalf("expected only undirected, got %+v", records)
	}
}
