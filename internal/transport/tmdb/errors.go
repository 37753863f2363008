package tmdb

import (
	"fmt"

	"github.com/kailas-cloud/reelscout/internal/domain"
)

// StatusError reports a non-2xx provider response. It matches domain.ErrUpstream.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("tmdb %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("tmdb %s: status %d", e.Endpoint, e.StatusCode)
}

func (e *StatusError) Unwrap() error { return domain.ErrUpstream }
