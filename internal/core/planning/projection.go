package planning

import (
	"sort"
	"strings"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Display markers attached to projected bookings.
const (
	MarkerModified   = "✏️"
	MarkerFixedCost  = "📌"
	MarkerSimulation = "🔮"
	MarkerPayroll    = "💰"
)

// Sources are the four booking families merged into one projection.
type Sources struct {
	Actual      []domain.Booking
	FixedCosts  []domain.Booking
	Payroll     []domain.Booking
	Simulations []domain.Booking
}

// Project merges all sources, sorts them by date (stable, so ties keep
// insertion order) and computes the running balance from startBalance.
// Actual bookings without a category are tagged Standard. A negative start
// balance is a valid overdraft and is kept as is.
func Project(src Sources, startBalance decimal.Decimal) domain.Projection {
	merged := make([]domain.Booking, 0, len(src.Actual)+len(src.FixedCosts)+len(src.Payroll)+len(src.Simulations))
	merged = appendTagged(merged, src.Actual, domain.CategoryStandard)
	merged = appendTagged(merged, src.FixedCosts, domain.CategoryFixedCost)
	merged = appendTagged(merged, src.Payroll, domain.CategoryPayroll)
	merged = appendTagged(merged, src.Simulations, domain.CategorySimulation)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	projection := domain.Projection{
		StartBalance: startBalance,
		FinalBalance: startBalance,
		Entries:      make([]domain.ProjectedBooking, len(merged)),
		Counts:       make(map[domain.Category]int),
	}
	balance := startBalance
	for i, b := range merged {
		signed := b.SignedAmount()
		balance = balance.Add(signed)
		projection.Entries[i] = domain.ProjectedBooking{
			Booking:      b,
			SignedAmount: signed,
			Balance:      balance,
			Marker:       Marker(b),
			Position:     i,
		}
		projection.Counts[b.Category]++
	}
	projection.FinalBalance = balance
	return projection
}

func appendTagged(dst, src []domain.Booking, category domain.Category) []domain.Booking {
	for _, b := range src {
		if b.Category == "" {
			b.Category = category
		}
		dst = append(dst, b)
	}
	return dst
}

// Marker returns the concatenated display markers for b.
func Marker(b domain.Booking) string {
	var markers []string
	if b.Modified {
		markers = append(markers, MarkerModified)
	}
	switch b.Category {
	case domain.CategoryFixedCost:
		markers = append(markers, MarkerFixedCost)
	case domain.CategorySimulation:
		markers = append(markers, MarkerSimulation)
	case domain.CategoryPayroll:
		markers = append(markers, MarkerPayroll)
	}
	return strings.Join(markers, " ")
}
