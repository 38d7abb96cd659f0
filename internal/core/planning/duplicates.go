package planning

import (
	"strings"

	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountTolerance is the largest amount difference still treated as equal.
var AmountTolerance = decimal.New(1, -2)

type duplicateKey struct {
	details   string
	direction domain.Direction
}

type knownAmount struct {
	amount   decimal.Decimal
	modified bool
}

// DuplicateDetector flags import candidates already present in the persisted
// ledger. Rows of the running import are never indexed, so two identical
// payments in one statement are both kept.
// A candidate is a duplicate when a record with the same details and
// direction exists whose amount differs by less than AmountTolerance, or
// which was hand-edited (any amount).
type DuplicateDetector struct {
	index map[duplicateKey][]knownAmount
}

// NewDuplicateDetector indexes the persisted ledger by (details, direction).
func NewDuplicateDetector(persisted []domain.Booking) *DuplicateDetector {
	d := &DuplicateDetector{index: make(map[duplicateKey][]knownAmount, len(persisted))}
	for _, b := range persisted {
		k := keyOf(b)
		d.index[k] = append(d.index[k], knownAmount{amount: b.Amount.Abs(), modified: b.Modified})
	}
	return d
}

// IsDuplicate applies the rule to candidate.
func (d *DuplicateDetector) IsDuplicate(candidate domain.Booking) bool {
	amount := candidate.Amount.Abs()
	for _, known := range d.index[keyOf(candidate)] {
		if known.modified {
			return true
		}
		if known.amount.Sub(amount).Abs().LessThan(AmountTolerance) {
			return true
		}
	}
	return false
}

func keyOf(b domain.Booking) duplicateKey {
	return duplicateKey{details: strings.TrimSpace(b.Details), direction: b.Direction}
}
