package services

import (
	"bytes"
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
	"github.com/SscSPs/liq_planning_app/internal/importer/bankhtml"
	"github.com/SscSPs/liq_planning_app/internal/importer/invoices"
	"github.com/SscSPs/liq_planning_app/internal/importer/rules"
	"github.com/SscSPs/liq_planning_app/internal/observability/metrics"
	"github.com/SscSPs/liq_planning_app/internal/utils/chf"
	"github.com/google/uuid"
)

const (
	sourceBank     = "bank"
	sourceInvoices = "invoices"
)

type importService struct {
	BaseService
	bookingRepo       portsrepo.BookingRepositoryFacade
	rules             rules.Rules
	overdueToTomorrow bool
}

// NewImportService creates the import pipeline. When overdueToTomorrow is set,
// rows dated before today are booked for tomorrow.
func NewImportService(repo portsrepo.BookingRepositoryFacade, r rules.Rules, overdueToTomorrow bool, options ...ServiceOption) portssvc.ImportSvc {
	return &importService{
		BaseService:       newBaseService(options...),
		bookingRepo:       repo,
		rules:             r,
		overdueToTomorrow: overdueToTomorrow,
	}
}

var _ portssvc.ImportSvc = (*importService)(nil)

// counts tracks the outcome of the rows of one source.
type counts struct {
	parsed, imported, ignored, invalid, duplicates, rescheduled int
}

func (c counts) observe(source string) {
	metrics.AddImportRows(source, metrics.OutcomeImported, c.imported)
	metrics.AddImportRows(source, metrics.OutcomeIgnored, c.ignored)
	metrics.AddImportRows(source, metrics.OutcomeInvalid, c.invalid)
	metrics.AddImportRows(source, metrics.OutcomeDuplicate, c.duplicates)
	metrics.AddImportRows(source, metrics.OutcomeReschedule, c.rescheduled)
}

func (c counts) addTo(r *domain.ImportReport) {
	r.Parsed += c.parsed
	r.Imported += c.imported
	r.Ignored += c.ignored
	r.Invalid += c.invalid
	r.Duplicates += c.duplicates
	r.Rescheduled += c.rescheduled
}

// batch collects accepted rows. Candidates are checked against the persisted
// ledger only.
type batch struct {
	detector *planning.DuplicateDetector
	accepted []domain.Booking
	today    time.Time
	overdue  bool
	userID   string
	now      time.Time
}

func (b *batch) offer(candidate domain.Booking, c *counts) {
	if b.detector.IsDuplicate(candidate) {
		c.duplicates++
		return
	}
	if b.overdue && candidate.Date.Before(b.today) {
		candidate.Date = b.today.AddDate(0, 0, 1)
		c.rescheduled++
	}
	candidate.ID = uuid.NewString()
	candidate.Category = domain.CategoryStandard
	candidate.Modified = false
	candidate.Touch(b.userID, b.now)
	b.accepted = append(b.accepted, candidate)
	c.imported++
}

func (s *importService) Import(ctx context.Context, req dto.ImportRequest, userID string) (report *domain.ImportReport, err error) {
	defer func() { metrics.ObserveImportRun(metrics.Result(err)) }()

	bankRows, err := bankhtml.ParseString(req.StatementHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	var invoiceRows []invoices.Row
	if len(req.Invoices) > 0 {
		if invoiceRows, err = invoices.Parse(bytes.NewReader(req.Invoices)); err != nil {
			return nil, err
		}
	}

	existing, err := s.bookingRepo.ListBookings(ctx, domain.BookingFilter{OwnerID: s.owner(userID)})
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for duplicate detection")
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	b := &batch{
		detector: planning.NewDuplicateDetector(existing),
		today:    s.today(),
		overdue:  s.overdueToTomorrow,
		userID:   userID,
		now:      s.now(),
	}

	bank := s.offerBankRows(b, bankRows)
	inv := s.offerInvoiceRows(b, invoiceRows)

	if len(b.accepted) > 0 {
		if err := s.bookingRepo.SaveBookings(ctx, b.accepted); err != nil {
			s.LogError(ctx, err, "Failed to save imported bookings", slog.Int("count", len(b.accepted)))
			return nil, fmt.Errorf("failed to save imported bookings: %w", err)
		}
	}
	bank.observe(sourceBank)
	inv.observe(sourceInvoices)

	report = &domain.ImportReport{}
	bank.addTo(report)
	inv.addTo(report)
	s.LogInfo(ctx, "Import finished",
		slog.Int("parsed", report.Parsed),
		slog.Int("imported", report.Imported),
		slog.Int("ignored", report.Ignored),
		slog.Int("invalid", report.Invalid),
		slog.Int("duplicates", report.Duplicates))
	return report, nil
}

// offerBankRows normalizes statement rows. Negative amounts are outgoing;
// the stored amount is always the magnitude.
func (s *importService) offerBankRows(b *batch, rows []bankhtml.Row) counts {
	var c counts
	for _, row := range rows {
		c.parsed++
		details := strings.TrimSpace(row.Details)
		if s.rules.Ignore(row.Type, details) {
			c.ignored++
			continue
		}
		date, err := chf.ParseDate(row.Date)
		if err != nil {
			c.invalid++
			continue
		}
		amount, err := chf.ParseAmount(row.Amount)
		if err != nil || details == "" {
			c.invalid++
			continue
		}
		direction := domain.Incoming
		if amount.IsNegative() {
			direction = domain.Outgoing
		}
		b.offer(domain.Booking{
			Date:      date,
			Details:   details,
			Amount:    amount.Abs(),
			Direction: direction,
		}, &c)
	}
	return c
}

// offerInvoiceRows books open invoices as incoming payments on their due date.
func (s *importService) offerInvoiceRows(b *batch, rows []invoices.Row) counts {
	var c counts
	for _, row := range rows {
		c.parsed++
		if row.Err != nil || row.Details() == "" {
			c.invalid++
			continue
		}
		b.offer(domain.Booking{
			Date:      row.DueDate,
			Details:   row.Details(),
			Amount:    row.Gross.Abs(),
			Direction: domain.Incoming,
		}, &c)
	}
	return c
}
