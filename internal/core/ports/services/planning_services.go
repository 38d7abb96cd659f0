package services

import (
	"context"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/dto"
)

// ProjectionResult is a computed projection together with its resolved window.
type ProjectionResult struct {
	Projection domain.Projection
	// Full is the projection before the display view was applied.
	Full       domain.Projection
	RangeStart string
	RangeEnd   string
}

// ExportFile is a rendered projection document.
type ExportFile struct {
	Data        []byte
	ContentType string
	FileName    string
}

// PlanningSvc computes cash-flow projections from the stored data.
type PlanningSvc interface {
	// Project merges actual, recurring and simulated bookings in the requested window.
	Project(ctx context.Context, params dto.ProjectionParams, userID string) (*ProjectionResult, error)

	// Summary aggregates the unfiltered projection by month and by day.
	Summary(ctx context.Context, params dto.ProjectionParams, userID string) (*dto.SummaryResponse, error)

	// Export renders the projection as xlsx or pdf.
	Export(ctx context.Context, params dto.ProjectionParams, userID string) (*ExportFile, error)
}

// ImportSvc turns bank statements and invoice lists into stored bookings.
type ImportSvc interface {
	Import(ctx context.Context, req dto.ImportRequest, userID string) (*domain.ImportReport, error)
}

// AdminSvc performs maintenance on the whole store.
type AdminSvc interface {
	// Reset deletes all planner data. It fails with ErrForbidden unless enabled.
	Reset(ctx context.Context, userID string) error

	// Health checks store connectivity.
	Health(ctx context.Context) error
}

// TokenSvc issues session tokens.
type TokenSvc interface {
	IssueToken(userID string) (string, int64, error)
}
