package timeparse

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// layouts are tried in order, in the target location.
var layouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05.000",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"January 2, 2006",
	"January 2, 2006 3:04 pm",
	"January 2, 2006 3:04 PM",
	"January 2, 2006 3:04:05 pm",
	"January 2, 2006 3:04:05 PM",
	"January 2, 2006 15:04",
	"January 2, 2006 15:04:05",
	"Jan 2, 2006",
	"Jan 2, 2006 15:04:05",
	"2 January 2006",
	"2 Jan 2006",
	"01/02/2006",
	"01/02/2006 15:04:05",
	time.ANSIC,
	time.UnixDate,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC850,
}

// nlp is built once; when.Parser is read-only after setup.
var nlp = func() *when.Parser {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(common.All...)
	return p
}()

// ParseTime parses a free-form date string in local time, relative to now.
// See ParseTimeIn.
func ParseTime(s string) (time.Time, error) {
	return ParseTimeIn(s, time.Local, time.Now())
}

// ParseTimeIn parses a free-form date string. Strings without an explicit
// offset are interpreted in loc. Parsing is layered:
//   - RFC3339, keeping its own offset: 2018-10-27T10:00:00Z
//   - Common absolute layouts: 2018-10-27, 2018-10-27 10:30:45,
//     July 4, 2005 7:22 pm, 4 July 2005, 10/27/2018, RFC1123, ...
//   - Any other absolute format recognized by araddon/dateparse
//   - English natural language relative to now: tomorrow, next monday at 9am
//
// Natural language is only attempted for inputs containing letters, so
// malformed numeric dates such as 2018-13-45 are rejected instead of being
// read as a time of day.
func ParseTimeIn(s string, loc *time.Location, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	if t, err := dateparse.ParseIn(s, loc); err == nil {
		return t, nil
	}

	if strings.IndexFunc(s, unicode.IsLetter) >= 0 {
		r, err := nlp.Parse(s, now.In(loc))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
		}
		if r != nil {
			return r.Time, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time format %q (expected a date such as 2018-10-27, July 4, 2005 7:22 pm, or tomorrow)", s)
}
