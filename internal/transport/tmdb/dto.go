package tmdb

import "github.com/kailas-cloud/reelscout/internal/domain"

type genreDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []genreDTO `json:"genres"`
}

type personDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type personSearchResponse struct {
	Results []personDTO `json:"results"`
}

type movieSummaryDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
}

type discoverResponse struct {
	Page    int               `json:"page"`
	Results []movieSummaryDTO `json:"results"`
}

type castDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type crewDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

type creditsResponse struct {
	ID   int64     `json:"id"`
	Cast []castDTO `json:"cast"`
	Crew []crewDTO `json:"crew"`
}

type movieDetailResponse struct {
	ID         int64      `json:"id"`
	IMDbID     string     `json:"imdb_id"`
	Title      string     `json:"title"`
	Genres     []genreDTO `json:"genres"`
	PosterPath string     `json:"poster_path"`
}

// statusBody is the provider error envelope.
type statusBody struct {
	StatusMessage string `json:"status_message"`
}

func toGenres(in []genreDTO) []domain.Genre {
	out := make([]domain.Genre, len(in))
	for i, g := range in {
		out[i] = domain.Genre{ID: g.ID, Name: g.Name}
	}
	return out
}

func (r discoverResponse) toDomain() []domain.ListingSummary {
	out := make([]domain.ListingSummary, len(r.Results))
	for i, m := range r.Results {
		out[i] = domain.ListingSummary{
			ID:          m.ID,
			Title:       m.Title,
			ReleaseDate: m.ReleaseDate,
			Popularity:  m.Popularity,
		}
	}
	return out
}

func (r creditsResponse) toDomain() domain.Credits {
	c := domain.Credits{
		Cast: make([]domain.CastMember, len(r.Cast)),
		Crew: make([]domain.CrewMember, len(r.Crew)),
	}
	for i, m := range r.Cast {
		c.Cast[i] = domain.CastMember{ID: m.ID, Name: m.Name}
	}
	for i, m := range r.Crew {
		c.Crew[i] = domain.CrewMember{ID: m.ID, Name: m.Name, Job: m.Job}
	}
	return c
}

func (r movieDetailResponse) toDomain() domain.MovieDetail {
	return domain.MovieDetail{
		ID:         r.ID,
		IMDbID:     r.IMDbID,
		Title:      r.Title,
		Genres:     toGenres(r.Genres),
		PosterPath: r.PosterPath,
	}
}
