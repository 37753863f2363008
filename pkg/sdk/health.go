package reelscout

import (
	"context"

	healthuc "github.com/kailas-cloud/reelscout/internal/usecase/health"
)

// HealthStatus represents the aggregated client health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // provider, catalog, window_store -> "ok"/"pending"/"error"
}

// Health checks the provider, the genre catalog and the shared window store.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
