package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is a row of the buchungen table.
type Booking struct {
	BookingID   string          `db:"booking_id"`
	Date        time.Time       `db:"date"`
	Details     string          `db:"details"`
	Amount      decimal.Decimal `db:"amount"`
	Direction   string          `db:"direction"`
	Category    string          `db:"category"`
	Modified    bool            `db:"modified"`
	SourceID    *string         `db:"source_id"`    // Nullable
	NominalDate *time.Time      `db:"nominal_date"` // Nullable
	AuditFields
}
