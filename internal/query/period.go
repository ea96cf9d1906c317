package query

import (
	"regexp"
	"strings"
	"time"
)

// PeriodKind distinguishes the three accepted textual shapes of the cveper
// filter value.
type PeriodKind int

const (
	PeriodInvalid PeriodKind = iota
	// PeriodMonthRange selects every period inside one calendar month.
	PeriodMonthRange
	// PeriodExactDate compares the date part of the stored period.
	PeriodExactDate
	// PeriodLabel compares the raw stored value directly; covers legacy
	// non-date period labels.
	PeriodLabel
)

// PeriodToken is the normalized form of a period filter value. Range tokens
// carry a half-open [Start, End) interval; the other kinds compare Raw.
type PeriodToken struct {
	Kind  PeriodKind
	Start time.Time
	End   time.Time
	Raw   string
}

var (
	yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	fullDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// NormalizePeriod sniffs the shape of a raw period value. Format priority:
// YYYY-MM month bucket, then YYYY-MM-DD exact date, then opaque label.
// Values that look like a month or date but fail calendar validation (e.g.
// "2024-13") degrade to labels rather than erroring.
func NormalizePeriod(raw string) PeriodToken {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PeriodToken{Kind: PeriodInvalid}
	}

	if yearMonthRe.MatchString(raw) {
		if start, err := time.Parse("2006-01", raw); err == nil {
			// Calendar-aware increment: December rolls into January.
			return PeriodToken{
				Kind:  PeriodMonthRange,
				Start: start,
				End:   start.AddDate(0, 1, 0),
				Raw:   raw,
			}
		}
	}

	if fullDateRe.MatchString(raw) {
		if _, err := time.Parse("2006-01-02", raw); err == nil {
			return PeriodToken{Kind: PeriodExactDate, Raw: raw}
		}
	}

	return PeriodToken{Kind: PeriodLabel, Raw: raw}
}
