package domain

// Criterion kinds understood by the pipeline.
const (
	CriterionCast     = "cast"
	CriterionDirector = "director"
	CriterionGenre    = "genre"
)

// Criteria is a caller-supplied free-text filter. All fields are optional.
type Criteria struct {
	Cast     []string `json:"cast,omitempty"`
	Director []string `json:"director,omitempty"`
	Category []string `json:"category,omitempty"`
}

// IsEmpty reports whether no criterion kind was supplied.
func (c Criteria) IsEmpty() bool {
	return c.Cast == nil && c.Director == nil && c.Category == nil
}

// ResolvedIDs holds provider ids resolved from Criteria, one set per criterion kind.
type ResolvedIDs struct {
	Cast     IDSet
	Director IDSet
	Category IDSet
}
