package health

import "context"

// DBPinger checks shared window store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// ProviderChecker checks metadata provider availability.
type ProviderChecker interface {
	HealthCheck(ctx context.Context) error
}

// CatalogState reports the genre catalog fetch outcome without blocking.
type CatalogState interface {
	CatalogState() (ready bool, err error)
}
