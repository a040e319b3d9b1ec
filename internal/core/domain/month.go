package domain

import (
	"fmt"
	"time"
)

// MonthLayout is the calendar-month form used throughout the ledger.
const MonthLayout = "2006-01"

// DateLayout is the transaction date form.
const DateLayout = "2006-01-02"

// ParseMonth parses a YYYY-MM month string.
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return t, nil
}

// PrevMonth returns the YYYY-MM month immediately before the given one.
// Malformed input is returned unchanged; the engine treats it as a month
// with no records.
func PrevMonth(month string) string {
	t, err := ParseMonth(month)
	if err != nil {
		return month
	}
	return t.AddDate(0, -1, 0).Format(MonthLayout)
}

// MonthsBetween returns the number of whole calendar months from a to b,
// floored at zero.
func MonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
