package model

import (
	"strings"
	"time"
)

// DayFormat is the canonical layout for day values in the table.
const DayFormat = "2006-01-02"

// dayLayouts are the stored-date layouts accepted on load, tried in order.
// The first entry is the canonical form; the rest cover hand-edited stores
// and exports from other tools.
var dayLayouts = []string{
	DayFormat,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
}

// Day returns the canonical day string for a point in time.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// CanonicalDay normalizes a stored date value to YYYY-MM-DD form.
// It reports false when the value matches none of the accepted layouts.
func CanonicalDay(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DayFormat), true
		}
	}
	return "", false
}
