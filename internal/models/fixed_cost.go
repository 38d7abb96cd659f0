package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedCost is a row of the fixkosten table.
type FixedCost struct {
	FixedCostID string          `db:"fixed_cost_id"`
	Name        string          `db:"name"`
	Amount      decimal.Decimal `db:"amount"`
	Rhythm      string          `db:"rhythm"`
	StartDate   time.Time       `db:"start_date"`
	EndDate     *time.Time      `db:"end_date"` // Nullable, open-ended when NULL
	AuditFields
}
