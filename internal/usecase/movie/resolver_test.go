package movie

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/reelscout/internal/domain"
)

func TestResolvePeople_KeepsTopHitInInputOrder(t *testing.T) {
	p := &mockProvider{people: map[string][]int64{
		"Tim Robbins":    {504, 77},
		"Morgan Freeman": {192},
	}}
	r := NewResolver(context.Background(), p, p, &countingGate{}, zap.NewNop())

	set, err := r.ResolvePeople(context.Background(), []string{"Tim Robbins", "Nobody", "Morgan Freeman"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := set.IDs()
	if !set.Present() || len(got) != 2 || got[0] != 504 || got[1] != 192 {
		t.Fatalf("expected [504 192], got %v", got)
	}
	if p.gatedSearch != 0 {
		t.Fatalf("people search must bypass the gate, %d gated calls", p.gatedSearch)
	}
}

func TestResolvePeople_FirstFailureWins(t *testing.T) {
	p := &mockProvider{
		people:    map[string][]int64{"A": {1}},
		peopleErr: map[string]error{"B": errProvider},
	}
	r := NewResolver(context.Background(), p, p, &countingGate{}, zap.NewNop())

	set, err := r.ResolvePeople(context.Background(), []string{"A", "B"})
	if !errors.Is(err, errProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if set.Present() {
		t.Fatal("failed resolution must not yield a set")
	}
}

func TestResolvePeople_EmptyNamesIsPresentEmpty(t *testing.T) {
	p := &mockProvider{}
	r := NewResolver(context.Background(), p, p, &countingGate{}, zap.NewNop())

	set, err := r.ResolvePeople(context.Background(), []string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Present() || set.Len() != 0 {
		t.Fatalf("expected present empty set, got %+v", set)
	}
}

func TestResolveGenres_CaseAndWhitespaceInsensitive(t *testing.T) {
	p := &mockProvider{genres: []domain.Genre{
		{ID: 28, Name: "Action"},
		{ID: 18, Name: "Drama"},
		{ID: 99, Name: "drama"},
	}}
	gate := &countingGate{}
	r := NewResolver(context.Background(), p, p, gate, zap.NewNop())

	set, err := r.ResolveGenres(context.Background(), []string{"  DRAMA ", "western", "action"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := set.IDs()
	if len(got) != 2 || got[0] != 18 || got[1] != 28 {
		t.Fatalf("expected [18 28], got %v", got)
	}
	if gate.count() != 1 {
		t.Fatalf("catalog fetch must go through the gate once, got %d", gate.count())
	}
}

func TestResolveGenres_CatalogMemoized(t *testing.T) {
	p := &mockProvider{genres: []domain.Genre{{ID: 18, Name: "Drama"}}}
	r := NewResolver(context.Background(), p, p, &countingGate{}, zap.NewNop())

	for i := 0; i < 3; i++ {
		if _, err := r.ResolveGenres(context.Background(), []string{"drama"}); err != nil {
			t.Fatalf("resolve %d: %v", i, err)
		}
	}
	if p.genreCalls != 1 {
		t.Fatalf("expected one catalog fetch, got %d", p.genreCalls)
	}
	if p.ungated != 0 {
		t.Fatal("catalog fetch must be gated")
	}
}

func TestResolveGenres_CatalogFailure(t *testing.T) {
	p := &mockProvider{genresErr: errProvider}
	r := NewResolver(context.Background(), p, p, &countingGate{}, zap.NewNop())

	_, err := r.ResolveGenres(context.Background(), []string{"drama"})
	if !errors.Is(err, domain.ErrCatalogUnavailable) || !errors.Is(err, errProvider) {
		t.Fatalf("expected ErrCatalogUnavailable wrapping cause, got %v", err)
	}

	ready, stateErr := r.CatalogState()
	if !ready || stateErr == nil {
		t.Fatalf("expected failed catalog state, got ready=%v err=%v", ready, stateErr)
	}
}

func TestCatalog_WaitRespectsContext(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	p := &mockProvider{genresGate: block}
	r := NewResolver(context.Background(), p, p, &countingGate{}, zap.NewNop())

	if ready, _ := r.CatalogState(); ready {
		t.Fatal("catalog must not be ready while the fetch is blocked")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := r.Catalog(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestNewResolver_CatalogSurvivesCancelledContext(t *testing.T) {
	p := &mockProvider{genres: []domain.Genre{{ID: 18, Name: "Drama"}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewResolver(ctx, p, p, &countingGate{}, zap.NewNop())
	catalog, err := r.Catalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != 1 {
		t.Fatalf("expected 1 genre, got %d", catalog.Len())
	}
}
