package domain

// DiscoverQuery is the provider discovery request. Absent sets are omitted from the
// request; present sets are sent pipe-joined (OR semantics), empty ones as an empty value.
type DiscoverQuery struct {
	Genres IDSet
	Crew   IDSet
	Cast   IDSet
}

// NewDiscoverQuery maps resolved criteria ids onto discovery filters.
func NewDiscoverQuery(ids ResolvedIDs) DiscoverQuery {
	return DiscoverQuery{
		Genres: ids.Category,
		Crew:   ids.Director,
		Cast:   ids.Cast,
	}
}

// Params returns the filter parameters in request form keyed by provider parameter name.
func (q DiscoverQuery) Params() map[string]string {
	params := make(map[string]string, 3)
	for name, set := range map[string]IDSet{
		"with_genres": q.Genres,
		"with_crew":   q.Crew,
		"with_cast":   q.Cast,
	} {
		if set.Present() {
			params[name] = set.Join("|")
		}
	}
	return params
}
