package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Simulation is a row of the simulationen table.
type Simulation struct {
	SimulationID string          `db:"simulation_id"`
	Date         time.Time       `db:"date"`
	Details      string          `db:"details"`
	Amount       decimal.Decimal `db:"amount"`
	Direction    string          `db:"direction"`
	AuditFields
}
