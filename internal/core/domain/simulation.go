package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Simulation is a hypothetical booking entered for scenario analysis.
// It has no category of its own; Simulation is injected when it is read.
type Simulation struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Details   string          `json:"details"`
	Amount    decimal.Decimal `json:"amount"`
	Direction Direction       `json:"direction"`
	AuditFields
}

// ToBooking converts the simulation into a Simulation-category booking.
func (s Simulation) ToBooking() Booking {
	return Booking{
		ID:          s.ID,
		Date:        s.Date,
		Details:     s.Details,
		Amount:      s.Amount,
		Direction:   s.Direction,
		Category:    CategorySimulation,
		AuditFields: s.AuditFields,
	}
}

// Validate checks the same invariants as a stored booking.
func (s Simulation) Validate() error {
	if s.Date.IsZero() {
		return apperrors.NewValidationError("simulation date is required")
	}
	if strings.TrimSpace(s.Details) == "" {
		return apperrors.NewValidationError("simulation details are required")
	}
	if s.Amount.IsNegative() {
		return apperrors.NewValidationError("simulation amount must not be negative")
	}
	if !s.Direction.Valid() {
		return apperrors.NewValidationError("unknown simulation direction")
	}
	return nil
}
