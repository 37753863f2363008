package domain

import "testing"

func TestDiscoverQuery_Params(t *testing.T) {
	q := NewDiscoverQuery(ResolvedIDs{
		Cast:     SomeIDs(1, 2),
		Director: NoIDs(),
		Category: SomeIDs(),
	})

	params := q.Params()
	if got, ok := params["with_cast"]; !ok || got != "1|2" {
		t.Errorf("with_cast = %q (present=%v), want 1|2", got, ok)
	}
	if _, ok := params["with_crew"]; ok {
		t.Error("absent director set must omit with_crew")
	}
	if got, ok := params["with_genres"]; !ok || got != "" {
		t.Errorf("present empty genre set must send empty value, got %q (present=%v)", got, ok)
	}
}

func TestDiscoverQuery_AllAbsent(t *testing.T) {
	if params := NewDiscoverQuery(ResolvedIDs{}).Params(); len(params) != 0 {
		t.Fatalf("expected no params, got %v", params)
	}
}
