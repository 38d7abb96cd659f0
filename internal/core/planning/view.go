package planning

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SortOrder is the display order of a projection.
type SortOrder string

const (
	SortDateAsc    SortOrder = "date_asc"
	SortDateDesc   SortOrder = "date_desc"
	SortAmountAsc  SortOrder = "amount_asc"
	SortAmountDesc SortOrder = "amount_desc"
)

// ParseSortOrder maps an empty string to SortDateAsc and rejects unknown values.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case "":
		return SortDateAsc, nil
	case SortDateAsc, SortDateDesc, SortAmountAsc, SortAmountDesc:
		return o, nil
	default:
		return "", fmt.Errorf("%w: unknown sort order %q", apperrors.ErrValidation, s)
	}
}

// View describes how a computed projection is filtered and ordered for display.
type View struct {
	Search    string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Sort      SortOrder
}

// ApplyView filters and reorders the entries of p. Balances are never
// recomputed: each entry keeps the running balance it had in date order.
func ApplyView(p domain.Projection, v View) domain.Projection {
	needle := strings.ToLower(strings.TrimSpace(v.Search))
	entries := make([]domain.ProjectedBooking, 0, len(p.Entries))
	for _, e := range p.Entries {
		if needle != "" && !strings.Contains(strings.ToLower(e.Details), needle) {
			continue
		}
		abs := e.Amount.Abs()
		if v.MinAmount != nil && abs.LessThan(*v.MinAmount) {
			continue
		}
		if v.MaxAmount != nil && abs.GreaterThan(*v.MaxAmount) {
			continue
		}
		entries = append(entries, e)
	}

	switch v.Sort {
	case SortDateDesc:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Position > entries[j].Position })
	case SortAmountAsc:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Amount.Abs().LessThan(entries[j].Amount.Abs()) })
	case SortAmountDesc:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Amount.Abs().GreaterThan(entries[j].Amount.Abs()) })
	}

	p.Entries = entries
	return p
}
