package parse

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Amount extracts a signed numeric value from a freeform amount string.
// Currency symbols, grouping characters, and other noise are stripped;
// whatever the numeric parse rejects afterwards (empty string, "--3")
// yields zero. Never fails.
func Amount(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' || r == '+' {
			return r
		}
		return -1
	}, s)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// layouts assume year-month-day field order throughout. The card center
// export and every feed seen so far use it; ambiguous day-first forms are
// not special-cased.
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DateTime parses a freeform timestamp in the local time zone. Dot and
// slash delimited forms are normalized to dashes on a second attempt.
// ok is false for empty or unrecognized input; callers drop such rows
// from time-bucketed statistics only.
func DateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, ok := tryLayouts(s); ok {
		return t, true
	}

	normalized := strings.NewReplacer(".", "-", "/", "-").Replace(s)
	if normalized != s {
		return tryLayouts(normalized)
	}
	return time.Time{}, false
}

func tryLayouts(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
