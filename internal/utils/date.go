package utils

import (
	"strings"
	"time"

	"github.com/yukikurage/studentorg/internal/constants"
)

// DateOf drops the clock part of t, keeping its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateLayout, strings.TrimSpace(s))
}

// YearBounds returns [Jan 1, next Jan 1) for the calendar year containing t.
func YearBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}
