package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectedBooking is a booking placed in the date-sorted ledger together with
// the running balance reached after it.
type ProjectedBooking struct {
	Booking
	SignedAmount decimal.Decimal `json:"signedAmount"`
	Balance      decimal.Decimal `json:"balance"`
	Marker       string          `json:"marker"`
	// Position is the index in date order; it survives any later display sort.
	Position int `json:"position"`
}

// Projection is the merged ledger with running balances.
type Projection struct {
	StartBalance decimal.Decimal    `json:"startBalance"`
	FinalBalance decimal.Decimal    `json:"finalBalance"`
	Entries      []ProjectedBooking `json:"entries"`
	Counts       map[Category]int   `json:"counts"`
}

// MonthlySummaryRow aggregates one calendar month of a projection.
type MonthlySummaryRow struct {
	Month          time.Time       `json:"month"`
	Incoming       decimal.Decimal `json:"incoming"`
	Outgoing       decimal.Decimal `json:"outgoing"`
	Net            decimal.Decimal `json:"net"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// DailyBalance is the balance at the end of one day.
type DailyBalance struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// ImportReport counts what happened to each row of an import run.
type ImportReport struct {
	Parsed     int `json:"parsed"`
	Imported   int `json:"imported"`
	Ignored    int `json:"ignored"`
	Invalid    int `json:"invalid"`
	Duplicates int `json:"duplicates"`
	// Rescheduled counts overdue rows moved to tomorrow.
	Rescheduled int `json:"rescheduled"`
}

// Skipped is the sum of rows that were not imported.
func (r ImportReport) Skipped() int {
	return r.Ignored + r.Invalid + r.Duplicates
}

// CurrentSalary pairs an employee with the salary resolved for a reference day.
type CurrentSalary struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Salary       Salary `json:"salary"`
}
