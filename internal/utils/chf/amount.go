// Package chf normalizes the Swiss-formatted dates and amounts found in bank
// exports and invoice sheets, and renders amounts back in the same style.
package chf

import (
	"strings"
	"unicode"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const currencyToken = "CHF"

// thousandsSeparators are dropped before parsing. The typographic apostrophe
// shows up in exports produced by word processors.
var thousandsSeparators = strings.NewReplacer("'", "", "’", "", "`", "")

// ParseAmount turns strings like "CHF 1'234,50" or "-99.90" into a decimal.
// A leading or trailing minus sign ("100.00-") is kept so callers can derive
// the direction from it. Both at once is rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if len(s) >= len(currencyToken) && strings.EqualFold(s[:len(currencyToken)], currencyToken) {
		s = s[len(currencyToken):]
	}
	s = thousandsSeparators.Replace(s)
	s = strings.ReplaceAll(s, ",", ".")

	trailingMinus := false
	if t := strings.TrimRightFunc(s, unicode.IsSpace); strings.HasSuffix(t, "-") {
		s = strings.TrimSuffix(t, "-")
		trailingMinus = true
	}

	var b strings.Builder
	negative := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
		case r == '-' && b.Len() == 0:
			negative = true
		case r == '.' || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}

	if negative && trailingMinus {
		return decimal.Zero, apperrors.NewParseError("amount", raw)
	}
	negative = negative || trailingMinus

	digits := b.String()
	if digits == "" || digits == "." || strings.Count(digits, ".") > 1 {
		return decimal.Zero, apperrors.NewParseError("amount", raw)
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, apperrors.NewParseError("amount", raw)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// FormatAmount renders d as "CHF 1'234.50", or "CHF -1'234.50" when negative.
func FormatAmount(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(currencyToken)
	b.WriteByte(' ')
	if d.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('\'')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
