package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Direction tells whether a booking brings cash in or takes it out.
type Direction string

const (
	Incoming Direction = "Incoming"
	Outgoing Direction = "Outgoing"
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == Incoming || d == Outgoing
}

// Category tags the source family of a booking. It only drives annotation.
type Category string

const (
	CategoryStandard   Category = "Standard"
	CategoryFixedCost  Category = "Fixkosten"
	CategoryPayroll    Category = "Lohn"
	CategorySimulation Category = "Simulation"
)

// Booking is one dated cash movement. Amount is always a non-negative
// magnitude; the sign comes from Direction.
type Booking struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Details   string          `json:"details"`
	Amount    decimal.Decimal `json:"amount"`
	Direction Direction       `json:"direction"`
	Category  Category        `json:"category"`
	Modified  bool            `json:"modified"`

	// SourceID and NominalDate are only set on bookings derived from a fixed cost.
	SourceID    string     `json:"sourceId,omitempty"`
	NominalDate *time.Time `json:"nominalDate,omitempty"`

	AuditFields
}

// SignedAmount returns -Amount for outgoing and +Amount for incoming bookings.
// The absolute value is taken first so a stray negative magnitude cannot flip the sign.
func (b Booking) SignedAmount() decimal.Decimal {
	abs := b.Amount.Abs()
	if b.Direction == Outgoing {
		return abs.Neg()
	}
	return abs
}

// Validate checks the stored-record invariants.
func (b Booking) Validate() error {
	if b.Date.IsZero() {
		return apperrors.NewValidationError("booking date is required")
	}
	if strings.TrimSpace(b.Details) == "" {
		return apperrors.NewValidationError("booking details are required")
	}
	if b.Amount.IsNegative() {
		return apperrors.NewValidationError(fmt.Sprintf("booking amount must not be negative, got %s", b.Amount))
	}
	if !b.Direction.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown direction %q", b.Direction))
	}
	return nil
}

// BookingFilter narrows a booking listing.
type BookingFilter struct {
	From         *time.Time
	To           *time.Time
	ModifiedOnly bool
	// OwnerID restricts the listing to records created by this user. Empty means all.
	OwnerID string
}
