package planning

import (
	"time"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpandFixedCosts materializes the fixed costs as outgoing bookings inside
// [rangeStart, rangeEnd]. The cadence runs on the nominal schedule anchored at
// the effective start; only the emitted payment date is weekend-adjusted.
// Costs with an unknown rhythm are skipped.
func ExpandFixedCosts(costs []domain.FixedCost, rangeStart, rangeEnd time.Time) []domain.Booking {
	var out []domain.Booking
	for _, cost := range costs {
		if !cost.ActiveAt(rangeStart) {
			continue
		}
		step := cost.Rhythm.Months()
		if step == 0 {
			continue
		}

		effectiveStart := maxTime(cost.Start, rangeStart)
		effectiveEnd := rangeEnd
		if cost.End != nil {
			effectiveEnd = minTime(*cost.End, rangeEnd)
		}

		details := cost.Rhythm.Prefix() + ": " + cost.Name
		for k := 0; ; k++ {
			nominal := AddMonths(effectiveStart, k*step)
			if nominal.After(effectiveEnd) {
				break
			}
			nominalDate := nominal
			out = append(out, domain.Booking{
				ID:          uuid.NewString(),
				Date:        AdjustForWeekend(nominal),
				Details:     details,
				Amount:      cost.Amount,
				Direction:   domain.Outgoing,
				Category:    domain.CategoryFixedCost,
				SourceID:    cost.ID,
				NominalDate: &nominalDate,
			})
		}
	}
	return out
}

// MonthlyFixedCostTotal sums the monthly equivalent of every cost still
// running on today.
func MonthlyFixedCostTotal(costs []domain.FixedCost, today time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, cost := range costs {
		if cost.ActiveAt(today) {
			total = total.Add(cost.MonthlyEquivalent())
		}
	}
	return total
}
