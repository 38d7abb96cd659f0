package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/SscSPs/liq_planning_app/internal/core/planning"
	portsrepo "github.com/SscSPs/liq_planning_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/SscSPs/liq_planning_app/internal/export"
	"github.com/SscSPs/liq_planning_app/internal/observability/metrics"
	"github.com/SscSPs/liq_planning_app/internal/utils/chf"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHorizonDays = 270
	exportTitle        = "Liquiditätsplanung"
	exportFilePrefix   = "liquiditaetsplanung"
)

type planningService struct {
	BaseService
	bookingRepo    portsrepo.BookingReader
	fixedCostRepo  portsrepo.FixedCostReader
	employeeRepo   portsrepo.EmployeeReader
	simulationRepo portsrepo.SimulationReader
	horizonDays    int
}

// PlanningRepos are the readers the planning service merges into a projection.
type PlanningRepos struct {
	Bookings    portsrepo.BookingReader
	FixedCosts  portsrepo.FixedCostReader
	Employees   portsrepo.EmployeeReader
	Simulations portsrepo.SimulationReader
}

// NewPlanningService creates the projection service. horizonDays is the
// default window length when no end date is requested.
func NewPlanningService(repos PlanningRepos, horizonDays int, options ...ServiceOption) portssvc.PlanningSvc {
	if horizonDays <= 0 {
		horizonDays = defaultHorizonDays
	}
	return &planningService{
		BaseService:    newBaseService(options...),
		bookingRepo:    repos.Bookings,
		fixedCostRepo:  repos.FixedCosts,
		employeeRepo:   repos.Employees,
		simulationRepo: repos.Simulations,
		horizonDays:    horizonDays,
	}
}

var _ portssvc.PlanningSvc = (*planningService)(nil)

// window resolves the requested date range.
func (s *planningService) window(params dto.ProjectionParams) (time.Time, time.Time, error) {
	from := s.today()
	if strings.TrimSpace(params.From) != "" {
		d, err := chf.ParseDate(params.From)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = d
	}
	to := from.AddDate(0, 0, s.horizonDays)
	if strings.TrimSpace(params.To) != "" {
		d, err := chf.ParseDate(params.To)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = d
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("projection end date must not be before its start date")
	}
	return from, to, nil
}

func include(toggle *bool) bool {
	return toggle == nil || *toggle
}

func (s *planningService) view(params dto.ProjectionParams) (planning.View, error) {
	order, err := planning.ParseSortOrder(params.Sort)
	if err != nil {
		return planning.View{}, err
	}
	minAmount, err := parseOptionalAmount(params.MinAmount)
	if err != nil {
		return planning.View{}, err
	}
	maxAmount, err := parseOptionalAmount(params.MaxAmount)
	if err != nil {
		return planning.View{}, err
	}
	if minAmount != nil && maxAmount != nil && minAmount.GreaterThan(*maxAmount) {
		return planning.View{}, apperrors.NewValidationError("minAmount must not exceed maxAmount")
	}
	return planning.View{Search: params.Search, MinAmount: minAmount, MaxAmount: maxAmount, Sort: order}, nil
}

// compute loads all sources concurrently and builds the unfiltered projection.
func (s *planningService) compute(ctx context.Context, params dto.ProjectionParams, userID string) (domain.Projection, time.Time, time.Time, error) {
	from, to, err := s.window(params)
	if err != nil {
		return domain.Projection{}, from, to, err
	}
	startBalance := decimal.Zero
	if strings.TrimSpace(params.StartBalance) != "" {
		if startBalance, err = chf.ParseAmount(params.StartBalance); err != nil {
			return domain.Projection{}, from, to, err
		}
	}

	owner := s.owner(userID)
	var (
		actual    []domain.Booking
		costs     []domain.FixedCost
		employees []domain.Employee
		sims      []domain.Simulation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		actual, err = s.bookingRepo.ListBookings(gctx, domain.BookingFilter{From: &from, To: &to, OwnerID: owner})
		return err
	})
	if include(params.IncludeFixedCosts) {
		g.Go(func() error {
			var err error
			costs, err = s.fixedCostRepo.ListFixedCosts(gctx, owner)
			return err
		})
	}
	if include(params.IncludePayroll) {
		g.Go(func() error {
			var err error
			employees, err = s.employeeRepo.ListEmployees(gctx, owner)
			return err
		})
	}
	if include(params.IncludeSimulations) {
		g.Go(func() error {
			var err error
			sims, err = s.simulationRepo.ListSimulations(gctx, owner)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load projection sources")
		return domain.Projection{}, from, to, fmt.Errorf("failed to load projection sources: %w", err)
	}

	window := planning.NewRange(from, to)
	simulated := make([]domain.Booking, 0, len(sims))
	for _, sim := range sims {
		if window.Contains(sim.Date) {
			simulated = append(simulated, sim.ToBooking())
		}
	}

	src := planning.Sources{
		Actual:      actual,
		FixedCosts:  planning.ExpandFixedCosts(costs, from, to),
		Payroll:     planning.ExpandPayroll(planning.ResolveCurrentSalaries(employees, s.today()), from, to),
		Simulations: simulated,
	}
	p := planning.Project(src, startBalance)
	s.LogDebug(ctx, "Projection computed",
		slog.String("from", chf.FormatDate(from)),
		slog.String("to", chf.FormatDate(to)),
		slog.Int("entries", len(p.Entries)))
	return p, from, to, nil
}

func (s *planningService) Project(ctx context.Context, params dto.ProjectionParams, userID string) (*portssvc.ProjectionResult, error) {
	started := time.Now()
	view, err := s.view(params)
	if err != nil {
		return nil, err
	}
	full, from, to, err := s.compute(ctx, params, userID)
	metrics.ObserveProjection(metrics.Result(err), len(full.Entries), time.Since(started))
	if err != nil {
		return nil, err
	}
	return &portssvc.ProjectionResult{
		Projection: planning.ApplyView(full, view),
		Full:       full,
		RangeStart: from.Format(time.DateOnly),
		RangeEnd:   to.Format(time.DateOnly),
	}, nil
}

func (s *planningService) Summary(ctx context.Context, params dto.ProjectionParams, userID string) (*dto.SummaryResponse, error) {
	full, from, to, err := s.compute(ctx, params, userID)
	if err != nil {
		return nil, err
	}
	res := dto.ToSummaryResponse(from.Format(time.DateOnly), to.Format(time.DateOnly), full,
		planning.MonthlySummary(full), planning.DailyBalances(full))
	return &res, nil
}

// Export renders the filtered projection. The monthly sheet always covers the
// unfiltered ledger.
func (s *planningService) Export(ctx context.Context, params dto.ProjectionParams, userID string) (*portssvc.ExportFile, error) {
	format := export.Format(strings.ToLower(strings.TrimSpace(params.Format)))
	if format == "" {
		format = export.FormatXLSX
	}
	if format != export.FormatXLSX && format != export.FormatPDF {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported export format %q", params.Format))
	}

	result, err := s.Project(ctx, params, userID)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	meta := export.Meta{
		Title:       exportTitle,
		GeneratedAt: s.now(),
	}
	meta.RangeStart, _ = time.Parse(time.DateOnly, result.RangeStart)
	meta.RangeEnd, _ = time.Parse(time.DateOnly, result.RangeEnd)

	data, err := export.Render(format, meta, result.Projection, planning.MonthlySummary(result.Full))
	metrics.ObserveExport(string(format), metrics.Result(err), time.Since(started))
	if err != nil {
		s.LogError(ctx, err, "Failed to render projection export", slog.String("format", string(format)))
		return nil, fmt.Errorf("failed to render export: %w", err)
	}
	return &portssvc.ExportFile{
		Data:        data,
		ContentType: format.ContentType(),
		FileName:    fmt.Sprintf("%s_%s_%s.%s", exportFilePrefix, result.RangeStart, result.RangeEnd, format),
	}, nil
}
