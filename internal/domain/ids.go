package domain

import (
	"strconv"
	"strings"
)

// IDSet is an optional ordered sequence of provider ids.
// The zero value is absent, which is distinct from a present but empty set.
type IDSet struct {
	ids     []int64
	present bool
}

// NoIDs returns an absent set.
func NoIDs() IDSet { return IDSet{} }

// SomeIDs returns a present set holding ids (possibly none).
func SomeIDs(ids ...int64) IDSet {
	out := make([]int64, len(ids))
	copy(out, ids)
	return IDSet{ids: out, present: true}
}

// Present reports whether the set was resolved at all.
func (s IDSet) Present() bool { return s.present }

// IDs returns a copy of the ids.
func (s IDSet) IDs() []int64 {
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of ids.
func (s IDSet) Len() int { return len(s.ids) }

// Contains reports whether id is a member.
func (s IDSet) Contains(id int64) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Join renders the ids separated by sep.
func (s IDSet) Join(sep string) string {
	parts := make([]string, len(s.ids))
	for i, id := range s.ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, sep)
}
