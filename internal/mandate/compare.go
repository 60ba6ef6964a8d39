package mandate

import "math"

// Compare returns the difference m - other in milliseconds. The result is
// NaN if either value is invalid.
func (m *Mandate) Compare(other Datelike) float64 {
	o := coerce(other)
	if !m.valid || !o.valid {
		return math.NaN()
	}
	return float64(m.t.UnixMilli() - o.t.UnixMilli())
}

// Lt reports whether m is before other.
func (m *Mandate) Lt(other Datelike) bool {
	return m.Compare(other) < 0
}

// Lte reports whether m is before or at the same instant as other.
func (m *Mandate) Lte(other Datelike) bool {
	return m.Compare(other) <= 0
}

// Gt reports whether m is after other.
func (m *Mandate) Gt(other Datelike) bool {
	return m.Compare(other) > 0
}

// Gte reports whether m is after or at the same instant as other.
func (m *Mandate) Gte(other Datelike) bool {
	return m.Compare(other) >= 0
}

// Eq reports whether m and other are equal. When precise is true they must be
// the same millisecond. Otherwise they only need to share the same rendered
// year, month and day, ignoring the time of day.
func (m *Mandate) Eq(other Datelike, precise bool) bool {
	o := coerce(other)
	if precise {
		return m.Compare(o) == 0
	}

	return m.Format("YYYY") == o.Format("YYYY") &&
		m.Format("MM") == o.Format("MM") &&
		m.Format("DD") == o.Format("DD")
}

// Diff returns the difference m - other measured in unit. Years are fixed
// 365-day years; Month is not a valid difference unit and yields NaN. If abs
// is true the result is the absolute value.
func (m *Mandate) Diff(other Datelike, unit Unit, abs bool) float64 {
	length, ok := diffLength(unit)
	if !ok {
		return math.NaN()
	}

	diff := m.Compare(other) / float64(length.Milliseconds())
	if abs {
		return math.Abs(diff)
	}
	return diff
}

// DiffInMilliseconds returns the difference between m and other in
// milliseconds. See Diff.
func (m *Mandate) DiffInMilliseconds(other Datelike, abs bool) float64 {
	return m.Diff(other, Millisecond, abs)
}

// DiffInSeconds returns the difference between m and other in seconds.
func (m *Mandate) DiffInSeconds(other Datelike, abs bool) float64 {
	return m.Diff(other, Second, abs)
}

// DiffInMinutes returns the difference between m and other in minutes.
func (m *Mandate) DiffInMinutes(other Datelike, abs bool) float64 {
	return m.Diff(other, Minute, abs)
}

// DiffInHours returns the difference between m and other in hours.
func (m *Mandate) DiffInHours(other Datelike, abs bool) float64 {
	return m.Diff(other, Hour, abs)
}

// DiffInDays returns the difference between m and other in 24-hour days.
func (m *Mandate) DiffInDays(other Datelike, abs bool) float64 {
	return m.Diff(other, Day, abs)
}

// DiffInWeeks returns the difference between m and other in weeks.
func (m *Mandate) DiffInWeeks(other Datelike, abs bool) float64 {
	return m.Diff(other, Week, abs)
}

// DiffInYears returns the difference between m and other in 365-day years.
func (m *Mandate) DiffInYears(other Datelike, abs bool) float64 {
	return m.Diff(other, Year, abs)
}
