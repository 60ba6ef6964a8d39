// Package timeparse provides extended time and offset parsing utilities.
package timeparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Offset is a signed amount of a calendar or clock unit.
type Offset struct {
	Amount int
	Unit   string // Lower-cased unit text, e.g. "mo" or "weeks"
}

// ParseOffset parses an offset such as "3d", "+2weeks", "-1mo", or "month".
// The amount defaults to 1 when omitted. The unit must be alphabetic; its
// meaning is resolved by the caller.
func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Offset{}, fmt.Errorf("empty offset string")
	}

	body := s
	sign := 1
	switch body[0] {
	case '-':
		sign = -1
		body = body[1:]
	case '+':
		body = body[1:]
	}

	// Find where the unit starts (first non-digit)
	i := 0
	for i < len(body) && (body[i] >= '0' && body[i] <= '9') {
		i++
	}

	unit := strings.ToLower(strings.TrimSpace(body[i:]))
	if unit == "" {
		return Offset{}, fmt.Errorf("invalid offset %q: missing unit", s)
	}
	for _, r := range unit {
		if r < 'a' || r > 'z' {
			return Offset{}, fmt.Errorf("invalid offset %q: malformed unit %q", s, unit)
		}
	}

	amount := 1
	if i > 0 {
		n, err := strconv.Atoi(body[:i])
		if err != nil {
			return Offset{}, fmt.Errorf("invalid offset %q: %w", s, err)
		}
		amount = n
	}

	return Offset{Amount: sign * amount, Unit: unit}, nil
}
