package reelscout

import "github.com/kailas-cloud/reelscout/internal/domain"

// Classification metadata attached to every Record.
const (
	OntologyClass    = domain.OntologyClass
	OntologySubclass = domain.OntologySubclass
)

// OntologyAttributes returns the supported criterion kinds: cast, director, genre.
func OntologyAttributes() []string { return domain.OntologyAttributes() }

// Criteria filters movies by names. A nil field is ignored; a non-nil empty field
// still constrains the query (an empty director list excludes every directed movie).
type Criteria struct {
	Cast     []string
	Director []string
	Category []string
}

// Attributes holds the descriptive lists of a Record.
type Attributes struct {
	Genres    []string `json:"film_and_book_genre"`
	Directors []string `json:"director"`
	Cast      []string `json:"cast"`
	Kind      string   `json:"movie_or_series"`
}

// Record is one normalized movie.
type Record struct {
	Class      string     `json:"class"`
	Subclass   string     `json:"subclass"`
	ID         int64      `json:"id"`
	URL        string     `json:"url"`
	WebURL     string     `json:"webUrl"`
	Source     string     `json:"source"`
	Type       string     `json:"type"`
	Name       string     `json:"name"`
	Tags       []string   `json:"tags"`
	Attributes Attributes `json:"attributes"`
}

func criteriaToDomain(in []Criteria) []domain.Criteria {
	out := make([]domain.Criteria, len(in))
	for i, c := range in {
		out[i] = domain.Criteria{Cast: c.Cast, Director: c.Director, Category: c.Category}
	}
	return out
}

func recordFromDomain(r domain.Record) Record {
	return Record{
		Class:    r.Class,
		Subclass: r.Subclass,
		ID:       r.ID,
		URL:      r.URL,
		WebURL:   r.WebURL,
		Source:   r.Source,
		Type:     r.Type,
		Name:     r.Name,
		Tags:     r.Tags,
		Attributes: Attributes{
			Genres:    r.Attributes.Genres,
			Directors: r.Attributes.Directors,
			Cast:      r.Attributes.Cast,
			Kind:      r.Attributes.Kind,
		},
	}
}
