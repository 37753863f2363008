package reelscout

import "github.com/kailas-cloud/reelscout/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrUpstream           = domain.ErrUpstream
	ErrInvalidCriteria    = domain.ErrInvalidCriteria
	ErrCatalogUnavailable = domain.ErrCatalogUnavailable
	ErrRateLimited        = domain.ErrRateLimited
)
