package mandate

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

var months = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// token is a single entry in the format table: an expression matching the
// token in a pattern and a function rendering its replacement.
type token struct {
	re     *regexp2.Regexp
	render func(t time.Time) string
}

func newToken(expr string, render func(t time.Time) string) token {
	return token{
		re:     regexp2.MustCompile(expr, regexp2.None),
		render: render,
	}
}

// tokens is applied in order, one global replacement per entry. Later entries
// see the output of earlier ones, so the lookaround guards keep short tokens
// from firing inside rendered text such as "AM", "pm", "March" or "December".
// Do not re-order.
var tokens = []token{
	newToken(`Y{4}`, func(t time.Time) string {
		return strconv.Itoa(t.Year())
	}),
	newToken(`Y{2}`, func(t time.Time) string {
		year := strconv.Itoa(t.Year())
		if len(year) > 2 {
			return year[len(year)-2:]
		}
		return year
	}),
	newToken(`A`, func(t time.Time) string {
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	}),
	newToken(`a`, func(t time.Time) string {
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	}),
	newToken(`H{2}`, func(t time.Time) string {
		return prefixZero(t.Hour(), 2)
	}),
	newToken(`H{1}`, func(t time.Time) string {
		return strconv.Itoa(t.Hour())
	}),
	newToken(`h{2}`, func(t time.Time) string {
		return prefixZero(twelveHour(t.Hour()), 2)
	}),
	newToken(`h{1}`, func(t time.Time) string {
		return strconv.Itoa(twelveHour(t.Hour()))
	}),
	newToken(`(?<![ap])m{2}`, func(t time.Time) string {
		return prefixZero(t.Minute(), 2)
	}),
	newToken(`(?<![ap])m{1}`, func(t time.Time) string {
		return strconv.Itoa(t.Minute())
	}),
	newToken(`s{2}`, func(t time.Time) string {
		return prefixZero(t.Second(), 2)
	}),
	newToken(`s{1}`, func(t time.Time) string {
		return strconv.Itoa(t.Second())
	}),
	newToken(`S{2}`, func(t time.Time) string {
		return prefixZero(millisecond(t), 3)
	}),
	newToken(`S{1}`, func(t time.Time) string {
		return strconv.Itoa(millisecond(t))
	}),
	newToken(`M{4}`, func(t time.Time) string {
		return months[t.Month()-1]
	}),
	newToken(`M{3}`, func(t time.Time) string {
		return months[t.Month()-1][:3]
	}),
	newToken(`M{2}(?!a)`, func(t time.Time) string {
		return prefixZero(int(t.Month()), 2)
	}),
	newToken(`(?<![AP])M{1}(?!a)`, func(t time.Time) string {
		return strconv.Itoa(int(t.Month()))
	}),
	newToken(`D{2}(?!e)`, func(t time.Time) string {
		return prefixZero(t.Day(), 2)
	}),
	newToken(`Do`, func(t time.Time) string {
		return strconv.Itoa(t.Day()) + OrdinalSuffix(t.Day())
	}),
	newToken(`D(?!e)`, func(t time.Time) string {
		return strconv.Itoa(t.Day())
	}),
}

// invalidMark stands in for rendered tokens of an invalid Mandate until every
// table entry has run, so "NaN" itself is never matched by a later token.
const invalidMark = "\uE000"

// Format replaces every token in pattern with its rendered value for m.
// Text that is not a token is copied through unchanged; there is no escape
// syntax.
//
// Tokens:
//
//	YYYY  full year               YY    two-digit year
//	MMMM  January                 MMM   Jan
//	MM    01-12                   M     1-12
//	DD    01-31                   D     1-31
//	Do    1st, 2nd, 3rd, 4th, ...
//	HH    00-23                   H     0-23
//	hh    01-12                   h     1-12
//	mm    00-59                   m     0-59
//	ss    00-59                   s     0-59
//	SS    000-999                 S     0-999
//	A     AM/PM                   a     am/pm
//
// Every token of an invalid Mandate renders as "NaN".
func (m *Mandate) Format(pattern string) string {
	for _, tok := range tokens {
		value := invalidMark
		if m.valid {
			value = tok.render(m.t)
		}

		out, err := tok.re.ReplaceFunc(pattern, func(regexp2.Match) string {
			return value
		}, -1, -1)
		if err != nil {
			// Only a match timeout fails, and none is configured.
			continue
		}
		pattern = out
	}

	if !m.valid {
		pattern = strings.ReplaceAll(pattern, invalidMark, "NaN")
	}
	return pattern
}

// OrdinalSuffix returns the English ordinal suffix for n: "st", "nd", "rd",
// or "th". 11, 12 and 13 take "th".
func OrdinalSuffix(n int) string {
	if r := n % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// prefixZero left-pads n with zeros to width digits.
func prefixZero(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) < width {
		return strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// twelveHour converts a 0-23 hour to a 1-12 hour.
func twelveHour(hour int) int {
	hour %= 12
	if hour == 0 {
		return 12
	}
	return hour
}

func millisecond(t time.Time) int {
	return t.Nanosecond() / int(time.Millisecond)
}
