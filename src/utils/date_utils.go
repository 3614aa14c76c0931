package utils

import (
	"fmt"
	"time"
)

const (
	MonthFormat     = "2006-01"    // interest rate series
	MonthDateFormat = "2006-01-02" // FX and asset price series
)

// ParseMonth parses a month column that may carry either a bare "YYYY-MM" or
// a full "YYYY-MM-DD" date. The day component is normalized to the first of
// the month.
func ParseMonth(s string) (time.Time, error) {
	if t, err := time.Parse(MonthDateFormat, s); err == nil {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month value %q: %w", s, err)
	}
	return t, nil
}

// SeptemberOf returns the first of September of the given calendar year, the
// reference month for academic-year pricing.
func SeptemberOf(year int) time.Time {
	return time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC)
}

// TruncateToMonth normalizes a date to midnight UTC on the first of its month.
func TruncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// YearsBetween returns the elapsed time between two dates in fractional
// years, using the mean year length.
func YearsBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24 / 365.25
}
