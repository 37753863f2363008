package domain

import "errors"

var (
	// ErrUpstream signals a metadata provider failure (network, HTTP status, malformed payload).
	ErrUpstream = errors.New("upstream provider error")
	// ErrInvalidCriteria signals a request without any criteria.
	ErrInvalidCriteria = errors.New("invalid criteria")
	// ErrCatalogUnavailable signals that the genre catalog could not be fetched.
	ErrCatalogUnavailable = errors.New("genre catalog unavailable")
	// ErrRateLimited signals an inbound rate limit hit.
	ErrRateLimited = errors.New("rate limited")
)
