package domain

import "strings"

// Genre is a provider category.
type Genre struct {
	ID   int64
	Name string
}

// GenreCatalog is the ordered list of provider genres. It is never mutated after construction.
type GenreCatalog struct {
	genres []Genre
}

// NewGenreCatalog creates a catalog preserving provider order.
func NewGenreCatalog(genres []Genre) GenreCatalog {
	out := make([]Genre, len(genres))
	copy(out, genres)
	return GenreCatalog{genres: out}
}

// Len returns the number of genres.
func (c GenreCatalog) Len() int { return len(c.genres) }

// Lookup finds the first genre whose name equals name ignoring case and surrounding whitespace.
func (c GenreCatalog) Lookup(name string) (Genre, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, g := range c.genres {
		if strings.ToLower(g.Name) == want {
			return g, true
		}
	}
	return Genre{}, false
}
