package mandate

import (
	"fmt"
	"strings"
	"time"
)

// Unit is a unit of time used by the arithmetic and difference methods.
type Unit string

const (
	Millisecond Unit = "millisecond"
	Second      Unit = "second"
	Minute      Unit = "minute"
	Hour        Unit = "hour"
	Day         Unit = "day"
	Week        Unit = "week"
	Month       Unit = "month"
	Year        Unit = "year"
)

// fixedLengths holds the units that add and subtract as exact durations.
// Months and years are calendar units and are handled separately.
var fixedLengths = map[Unit]time.Duration{
	Millisecond: time.Millisecond,
	Second:      time.Second,
	Minute:      time.Minute,
	Hour:        time.Hour,
	Day:         24 * time.Hour,
	Week:        7 * 24 * time.Hour,
}

// diffYear is the length of a year for differences only. Calendar arithmetic
// on years uses the real calendar.
const diffYear = 365 * 24 * time.Hour

// DiffUnits lists the units accepted by Diff, smallest first.
var DiffUnits = []Unit{Millisecond, Second, Minute, Hour, Day, Week, Year}

// diffLength returns the fixed length of unit for differences.
func diffLength(unit Unit) (time.Duration, bool) {
	if unit == Year {
		return diffYear, true
	}
	d, ok := fixedLengths[unit]
	return d, ok
}

var unitNames = map[string]Unit{
	"ms":           Millisecond,
	"millisecond":  Millisecond,
	"milliseconds": Millisecond,
	"s":            Second,
	"sec":          Second,
	"second":       Second,
	"seconds":      Second,
	"m":            Minute,
	"min":          Minute,
	"minute":       Minute,
	"minutes":      Minute,
	"h":            Hour,
	"hour":         Hour,
	"hours":        Hour,
	"d":            Day,
	"day":          Day,
	"days":         Day,
	"w":            Week,
	"week":         Week,
	"weeks":        Week,
	"mo":           Month,
	"month":        Month,
	"months":       Month,
	"y":            Year,
	"year":         Year,
	"years":        Year,
}

// ParseUnit parses a unit name such as "day", "weeks", or "ms".
func ParseUnit(s string) (Unit, error) {
	unit, ok := unitNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown unit %q", s)
	}
	return unit, nil
}
