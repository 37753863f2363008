package domain

// Classification metadata attached to every record.
const (
	OntologyClass    = "MovieAndTv"
	OntologySubclass = "MovieAndSeries"
	SourceTag        = "themoviedb"
	TypeTag          = "web"
	KindMovie        = "movie"

	imdbTitleURL = "http://www.imdb.com/title/"
)

// OntologyAttributes returns the supported criterion kinds.
func OntologyAttributes() []string {
	return []string{CriterionCast, CriterionDirector, CriterionGenre}
}

// Attributes is the attribute block of a Record.
type Attributes struct {
	Genres    []string `json:"film_and_book_genre"`
	Directors []string `json:"director"`
	Cast      []string `json:"cast"`
	Kind      string   `json:"movie_or_series"`
}

// Record is the normalized output schema.
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

// NewRecord maps a joined detail into a Record.
func NewRecord(j JoinedDetail) Record {
	directors := j.Directors()
	directorNames := make([]string, len(directors))
	for i, d := range directors {
		directorNames[i] = d.Name
	}

	genres := make([]string, len(j.Detail.Genres))
	for i, g := range j.Detail.Genres {
		genres[i] = g.Name
	}

	cast := make([]string, len(j.Credits.Cast))
	for i, c := range j.Credits.Cast {
		cast[i] = c.Name
	}

	url := imdbTitleURL + j.Detail.IMDbID
	return Record{
		Class:    OntologyClass,
		Subclass: OntologySubclass,
		ID:       j.Detail.ID,
		URL:      url,
		WebURL:   url,
		Source:   SourceTag,
		Type:     TypeTag,
		Name:     j.Detail.Title,
		Tags:     []string{},
		Attributes: Attributes{
			Genres:    genres,
			Directors: directorNames,
			Cast:      cast,
			Kind:      KindMovie,
		},
	}
}
