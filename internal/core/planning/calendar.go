// Package planning holds the pure cash-flow engine: recurrence expansion,
// ledger merge with running balances and import duplicate detection.
// Nothing here performs I/O; callers fetch snapshots and pass them in.
package planning

import (
	"time"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
)

// AdjustForWeekend moves Saturday and Sunday back to the preceding Friday.
// Weekdays are returned unchanged, so the function is idempotent.
func AdjustForWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, -1)
	case time.Sunday:
		return d.AddDate(0, 0, -2)
	default:
		return d
	}
}

// AddMonths adds n calendar months to anchor, clamping the day to the last
// day of the target month. Unlike time.AddDate it never spills into the next
// month, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(anchor time.Time, n int) time.Time {
	y, m, d := anchor.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, anchor.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// Range is an inclusive calendar date window.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange normalizes both bounds to calendar dates.
func NewRange(start, end time.Time) Range {
	return Range{Start: domain.DateOnly(start), End: domain.DateOnly(end)}
}

// Contains reports whether d lies within the window, bounds included.
func (r Range) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}
