package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Rhythm is the recurrence cadence of a fixed cost.
type Rhythm string

const (
	RhythmMonthly    Rhythm = "monatlich"
	RhythmQuarterly  Rhythm = "quartalsweise"
	RhythmSemiAnnual Rhythm = "halbjährlich"
	RhythmAnnual     Rhythm = "jährlich"
)

type rhythmInfo struct {
	months int
	prefix string
}

var rhythms = map[Rhythm]rhythmInfo{
	RhythmMonthly:    {months: 1, prefix: "Monatliche Fixkosten"},
	RhythmQuarterly:  {months: 3, prefix: "Quartalsfixkosten"},
	RhythmSemiAnnual: {months: 6, prefix: "Halbjährliche Fixkosten"},
	RhythmAnnual:     {months: 12, prefix: "Jährliche Fixkosten"},
}

// Rhythms lists the known cadences in ascending interval order.
func Rhythms() []Rhythm {
	return []Rhythm{RhythmMonthly, RhythmQuarterly, RhythmSemiAnnual, RhythmAnnual}
}

// Months returns the interval length in months, or 0 for an unknown rhythm.
func (r Rhythm) Months() int {
	return rhythms[r].months
}

// Prefix returns the booking details prefix used for the cadence.
func (r Rhythm) Prefix() string {
	return rhythms[r].prefix
}

// Valid reports whether the rhythm is one of the known cadences.
func (r Rhythm) Valid() bool {
	_, ok := rhythms[r]
	return ok
}

// FixedCost is a recurring outgoing obligation. A nil End means open-ended.
type FixedCost struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Rhythm Rhythm          `json:"rhythm"`
	Start  time.Time       `json:"start"`
	End    *time.Time      `json:"end,omitempty"`
	AuditFields
}

// Validate checks amount, cadence and the End > Start invariant.
func (f FixedCost) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return apperrors.NewValidationError("fixed cost name is required")
	}
	if f.Amount.IsNegative() {
		return apperrors.NewValidationError("fixed cost amount must not be negative")
	}
	if !f.Rhythm.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown rhythm %q", f.Rhythm))
	}
	if f.Start.IsZero() {
		return apperrors.NewValidationError("fixed cost start date is required")
	}
	if f.End != nil && !f.End.After(f.Start) {
		return apperrors.NewValidationError("fixed cost end date must be after its start date")
	}
	return nil
}

// ActiveAt reports whether the cost is not ended at or before day.
func (f FixedCost) ActiveAt(day time.Time) bool {
	return f.End == nil || f.End.After(day)
}

// Stop ends the cost at today instead of deleting it, keeping its history.
func (f *FixedCost) Stop(today time.Time) error {
	end := DateOnly(today)
	if !end.After(f.Start) {
		return apperrors.NewValidationError("a fixed cost cannot be stopped on or before its start date")
	}
	f.End = &end
	return nil
}

// MonthlyEquivalent spreads the amount over the months of one interval.
// Unknown rhythms contribute zero.
func (f FixedCost) MonthlyEquivalent() decimal.Decimal {
	months := f.Rhythm.Months()
	if months == 0 {
		return decimal.Zero
	}
	return f.Amount.Div(decimal.NewFromInt(int64(months)))
}
