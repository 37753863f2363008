package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the provider is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckPending indicates a component still warming up.
	CheckPending CheckResult = "pending"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Check names.
const (
	CheckProvider    = "provider"
	CheckCatalog     = "catalog"
	CheckWindowStore = "window_store"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	provider ProviderChecker
	catalog  CatalogState
	store    DBPinger
}

// New creates a Service. store is nil when the gate keeps its window in memory.
func New(provider ProviderChecker, catalog CatalogState, store DBPinger) *Service {
	return &Service{provider: provider, catalog: catalog, store: store}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.provider.HealthCheck(ctx); err != nil {
		checks[CheckProvider] = CheckError
	} else {
		checks[CheckProvider] = CheckOK
	}

	switch ready, err := s.catalog.CatalogState(); {
	case !ready:
		checks[CheckCatalog] = CheckPending
	case err != nil:
		checks[CheckCatalog] = CheckError
	default:
		checks[CheckCatalog] = CheckOK
	}

	if s.store != nil {
		if err := s.store.Ping(ctx); err != nil {
			checks[CheckWindowStore] = CheckError
		} else {
			checks[CheckWindowStore] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}
	if checks[CheckProvider] == CheckError {
		status = Unhealthy
	}

	return Report{Status: status, Checks: checks}
}
