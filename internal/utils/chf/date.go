package chf

import (
	"strings"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
)

const (
	isoLayout     = "2006-01-02"
	dottedLayout  = "02.01.2006"
	displayLayout = "02.01.2006"
)

// fallbackLayouts are tried in order for anything that is neither ISO nor dotted.
// All of them read the day before the month.
var fallbackLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"2/1/06",
	"2 Jan 2006",
	"2 January 2006",
	"2. January 2006",
	"20060102",
}

// ParseDate accepts ISO dates (optionally followed by a time part), dotted Swiss
// dates with two- or four-digit years and a few day-first fallbacks. The result
// is midnight UTC. Unparseable input returns the zero time and an ErrParse.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, apperrors.NewParseError("date", raw)
	}

	if strings.Contains(s, "-") {
		if i := strings.IndexAny(s, "T "); i > 0 {
			s = s[:i]
		}
		t, err := time.Parse(isoLayout, s)
		if err != nil {
			return time.Time{}, apperrors.NewParseError("date", raw)
		}
		return t, nil
	}

	if strings.Contains(s, ".") {
		if parts := strings.Split(s, "."); len(parts) == 3 {
			day := leftPad(parts[0])
			month := leftPad(parts[1])
			year := parts[2]
			if len(year) == 2 {
				year = "20" + year
			}
			t, err := time.Parse(dottedLayout, day+"."+month+"."+year)
			if err != nil {
				return time.Time{}, apperrors.NewParseError("date", raw)
			}
			return t, nil
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewParseError("date", raw)
}

// FormatDate renders t as DD.MM.YYYY.
func FormatDate(t time.Time) string {
	return t.Format(displayLayout)
}

func leftPad(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
