package reelscout

import (
	"context"

	"github.com/kailas-cloud/reelscout/internal/domain"
	healthuc "github.com/kailas-cloud/reelscout/internal/usecase/health"
)

// --- pipelineUseCase mock ---

type mockPipelineUC struct {
	executeFn func(ctx context.Context, criteria []domain.Criteria, limit int) ([]domain.Record, error)
}

func (m *mockPipelineUC) Execute(ctx context.Context, criteria []domain.Criteria, limit int) ([]domain.Record, error) {
	return m.executeFn(ctx, criteria, limit)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report {
	return m.report
}
