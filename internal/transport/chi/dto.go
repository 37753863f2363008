package chi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/reelscout/internal/domain"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned to clients.
const (
	ErrorCodeBadRequest         ErrorCode = "bad_request"
	ErrorCodeValidationFailed   ErrorCode = "validation_failed"
	ErrorCodeUnauthorized       ErrorCode = "unauthorized"
	ErrorCodeRateLimited        ErrorCode = "rate_limited"
	ErrorCodeUpstreamError      ErrorCode = "upstream_error"
	ErrorCodeCatalogUnavailable ErrorCode = "catalog_unavailable"
	ErrorCodeRequestCanceled    ErrorCode = "request_canceled"
	ErrorCodeInternalError      ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// nameList accepts either a JSON array of names or a single name.
// A missing or null field stays nil, which the pipeline treats as "criterion absent".
type nameList []string

func (n *nameList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode name: %w", err)
		}
		*n = nameList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("names must be a string or an array of strings: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	*n = list
	return nil
}

// CriteriaRequest is one criteria object. genre is an alias of category.
type CriteriaRequest struct {
	Cast     nameList `json:"cast"`
	Director nameList `json:"director"`
	Category nameList `json:"category"`
	Genre    nameList `json:"genre"`
}

func (c CriteriaRequest) toDomain() domain.Criteria {
	category := c.Category
	if category == nil {
		category = c.Genre
	}
	return domain.Criteria{
		Cast:     []string(c.Cast),
		Director: []string(c.Director),
		Category: []string(category),
	}
}

// QueryRequest is the body of POST /v1/query.
type QueryRequest struct {
	Criteria []CriteriaRequest `json:"criteria"`
	Limit    int               `json:"limit"`
}

func (q QueryRequest) criteria() []domain.Criteria {
	out := make([]domain.Criteria, len(q.Criteria))
	for i, c := range q.Criteria {
		out[i] = c.toDomain()
	}
	return out
}

// QueryResponse is the body returned by POST /v1/query.
type QueryResponse struct {
	Items []domain.Record `json:"items"`
	Count int             `json:"count"`
}

// MetaResponse describes the classification this service produces.
type MetaResponse struct {
	Class      string   `json:"class"`
	Subclass   string   `json:"subclass"`
	Attributes []string `json:"attributes"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
