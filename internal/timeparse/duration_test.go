package timeparse

import (
	"testing"
)

func TestParseOffset(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Offset
		wantErr bool
	}{
		// Basic time units
		{"milliseconds", "250ms", Offset{250, "ms"}, false},
		{"seconds", "10s", Offset{10, "s"}, false},
		{"minutes", "5m", Offset{5, "m"}, false},
		{"hours", "2h", Offset{2, "h"}, false},

		// Days and weeks
		{"days short", "1d", Offset{1, "d"}, false},
		{"days plural", "2days", Offset{2, "days"}, false},
		{"weeks short", "1w", Offset{1, "w"}, false},
		{"weeks plural", "2weeks", Offset{2, "weeks"}, false},

		// Calendar units
		{"months short", "3mo", Offset{3, "mo"}, false},
		{"month singular", "1month", Offset{1, "month"}, false},
		{"years short", "4y", Offset{4, "y"}, false},
		{"years plural", "10years", Offset{10, "years"}, false},

		// Signs and defaults
		{"explicit plus", "+3d", Offset{3, "d"}, false},
		{"negative", "-1mo", Offset{-1, "mo"}, false},
		{"bare unit", "month", Offset{1, "month"}, false},
		{"bare negative unit", "-year", Offset{-1, "year"}, false},
		{"upper case unit", "2Days", Offset{2, "days"}, false},
		{"with spaces", " 10h ", Offset{10, "h"}, false},
		{"space before unit", "3 days", Offset{3, "days"}, false},

		// Error cases
		{"empty string", "", Offset{}, true},
		{"no unit", "123", Offset{}, true},
		{"sign only", "-", Offset{}, true},
		{"unit with digits", "10x2", Offset{}, true},
		{"combined units not supported", "1h30m", Offset{}, true},
		{"fractional not supported", "1.5h", Offset{}, true},
		{"too large", "99999999999999999999d", Offset{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOffset(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseOffset(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseOffset(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
