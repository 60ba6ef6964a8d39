// Package mandate provides a mutable date value with comparison, calendar
// arithmetic, and token-based formatting.
//
// A Mandate wraps a single instant at millisecond precision. Calendar fields
// are derived from the instant in the location of the wrapped time (local
// time for values built from strings, epoch numbers, or the current time).
//
// Add and Sub methods mutate the value in place and return it so calls can
// be chained. A *Mandate is not safe for concurrent mutation; callers that
// share one across goroutines must synchronize access themselves.
package mandate

import (
	"math"
	"time"

	"github.com/jparise/mandate/internal/timeparse"
)

// Datelike is any value that can be coerced into a Mandate: *Mandate,
// Mandate, time.Time, *time.Time, string, int64 or int (epoch
// milliseconds), or nil (the current time). Other types coerce to an
// invalid Mandate.
type Datelike = any

// Mandate is a point in time with millisecond precision.
//
// The zero value is invalid: it formats as "NaN", is never precisely equal
// to anything (itself included), and ignores arithmetic. Loose equality
// compares rendered text, so two invalid values are loosely equal.
type Mandate struct {
	t     time.Time
	valid bool
}

// New returns a Mandate for the current instant in local time.
func New() *Mandate {
	return FromTime(time.Now())
}

// FromTime returns a Mandate for t, truncated to the millisecond. Calendar
// fields are decomposed in t's location.
func FromTime(t time.Time) *Mandate {
	return &Mandate{
		t:     time.UnixMilli(t.UnixMilli()).In(t.Location()),
		valid: true,
	}
}

// FromUnixMilli returns a Mandate for ms milliseconds since the Unix epoch,
// in local time.
func FromUnixMilli(ms int64) *Mandate {
	return &Mandate{t: time.UnixMilli(ms), valid: true}
}

// Parse returns a Mandate for the free-form date string s, in local time.
// Strings that cannot be parsed produce an invalid Mandate.
func Parse(s string) *Mandate {
	t, err := timeparse.ParseTime(s)
	if err != nil {
		return &Mandate{}
	}
	return FromTime(t.In(time.Local))
}

// Of coerces v into a new Mandate. A Mandate argument is copied by instant
// rather than re-parsed.
func Of(v Datelike) *Mandate {
	switch d := v.(type) {
	case nil:
		return New()
	case *Mandate:
		if d == nil {
			return &Mandate{}
		}
		return d.Clone()
	case Mandate:
		return d.Clone()
	case time.Time:
		return FromTime(d)
	case *time.Time:
		if d == nil {
			return &Mandate{}
		}
		return FromTime(*d)
	case string:
		return Parse(d)
	case int64:
		return FromUnixMilli(d)
	case int:
		return FromUnixMilli(int64(d))
	default:
		return &Mandate{}
	}
}

// coerce is like Of but returns *Mandate arguments without copying them.
// The result must be treated as read-only.
func coerce(v Datelike) *Mandate {
	if m, ok := v.(*Mandate); ok && m != nil {
		return m
	}
	return Of(v)
}

// Clone returns an independent copy of m.
func (m *Mandate) Clone() *Mandate {
	c := *m
	return &c
}

// Valid reports whether m holds a real instant.
func (m *Mandate) Valid() bool {
	return m.valid
}

// Time returns the wrapped time, or the zero time.Time if m is invalid.
func (m *Mandate) Time() time.Time {
	if !m.valid {
		return time.Time{}
	}
	return m.t
}

// ToUnixMs returns the number of milliseconds since January 1, 1970 UTC.
// It returns 0 for an invalid Mandate; check Valid first.
func (m *Mandate) ToUnixMs() int64 {
	if !m.valid {
		return 0
	}
	return m.t.UnixMilli()
}

// ToUnix returns the number of seconds since January 1, 1970 UTC, including
// the fractional part. It returns NaN for an invalid Mandate.
func (m *Mandate) ToUnix() float64 {
	if !m.valid {
		return math.NaN()
	}
	return float64(m.t.UnixMilli()) / 1000
}

// ToDateString formats m as "YYYY-MM-DD".
func (m *Mandate) ToDateString() string {
	return m.Format("YYYY-MM-DD")
}

// ToDateTimeString formats m as "YYYY-MM-DD hh:mm:ss".
func (m *Mandate) ToDateTimeString() string {
	return m.Format("YYYY-MM-DD hh:mm:ss")
}

// ToWestern formats m as "MMMM Do, YYYY", e.g. "February 1st, 2020".
func (m *Mandate) ToWestern() string {
	return m.Format("MMMM Do, YYYY")
}

// ToEuro formats m as "D MMMM YYYY", e.g. "1 February 2020".
func (m *Mandate) ToEuro() string {
	return m.Format("D MMMM YYYY")
}

// String is used by fmt.Print.
func (m *Mandate) String() string {
	return m.ToDateTimeString()
}
