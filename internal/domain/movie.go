package domain

// DirectorJob is the crew job tag identifying directors.
const DirectorJob = "Director"

// ListingSummary is a single discovery hit.
// BackgroundImageURL is filled in place by the aggregator when the detail carries a poster.
type ListingSummary struct {
	ID                 int64
	Title              string
	ReleaseDate        string
	Popularity         float64
	BackgroundImageURL string
}

// CastMember is a credited actor.
type CastMember struct {
	ID   int64
	Name string
}

// CrewMember is a credited crew member with a job tag.
type CrewMember struct {
	ID   int64
	Name string
	Job  string
}

// Credits lists cast and crew of a movie.
type Credits struct {
	Cast []CastMember
	Crew []CrewMember
}

// MovieDetail is the per-movie metadata.
type MovieDetail struct {
	ID         int64
	IMDbID     string
	Title      string
	Genres     []Genre
	PosterPath string
}

// JoinedDetail joins credits and metadata of one movie.
type JoinedDetail struct {
	Credits Credits
	Detail  MovieDetail
}

// Directors returns crew members whose job is exactly DirectorJob, in credit order.
func (j JoinedDetail) Directors() []CrewMember {
	var out []CrewMember
	for _, c := range j.Credits.Crew {
		if c.Job == DirectorJob {
			out = append(out, c)
		}
	}
	return out
}

// DirectedOnlyBy reports whether every director is a member of allowed.
// A movie without directors passes vacuously.
func (j JoinedDetail) DirectedOnlyBy(allowed IDSet) bool {
	for _, d := range j.Directors() {
		if !allowed.Contains(d.ID) {
			return false
		}
	}
	return true
}
