package planning

import (
	"time"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlySummary groups a date-ordered projection by calendar month. Months
// without bookings are not emitted.
func MonthlySummary(p domain.Projection) []domain.MonthlySummaryRow {
	var rows []domain.MonthlySummaryRow
	for _, e := range p.Entries {
		month := time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		if len(rows) == 0 || !rows[len(rows)-1].Month.Equal(month) {
			rows = append(rows, domain.MonthlySummaryRow{
				Month:    month,
				Incoming: decimal.Zero,
				Outgoing: decimal.Zero,
				Net:      decimal.Zero,
			})
		}
		row := &rows[len(rows)-1]
		if e.Direction == domain.Outgoing {
			row.Outgoing = row.Outgoing.Add(e.Amount.Abs())
		} else {
			row.Incoming = row.Incoming.Add(e.Amount.Abs())
		}
		row.Net = row.Net.Add(e.SignedAmount)
		row.ClosingBalance = e.Balance
	}
	return rows
}

// DailyBalances returns the balance at the end of each day that has bookings.
func DailyBalances(p domain.Projection) []domain.DailyBalance {
	var out []domain.DailyBalance
	for _, e := range p.Entries {
		day := domain.DateOnly(e.Date)
		if n := len(out); n > 0 && out[n-1].Date.Equal(day) {
			out[n-1].Balance = e.Balance
			continue
		}
		out = append(out, domain.DailyBalance{Date: day, Balance: e.Balance})
	}
	return out
}

// LowestBalance returns the first day with the minimum closing balance, or nil
// when there are no days.
func LowestBalance(daily []domain.DailyBalance) *domain.DailyBalance {
	if len(daily) == 0 {
		return nil
	}
	low := daily[0]
	for _, d := range daily[1:] {
		if d.Balance.LessThan(low.Balance) {
			low = d
		}
	}
	return &low
}
