package mandate

import "time"

// Add moves m forward by n units and returns m.
//
// Fixed units (Millisecond through Week) add an exact number of
// milliseconds to the instant, so the range is not limited to what a
// time.Duration can hold. Month and
// Year set the calendar field and let the result normalize forward, so
// January 31 plus one month is March 2 or 3, and February 29 plus one year
// is March 1. Unknown units and invalid values are left unchanged.
func (m *Mandate) Add(n int, unit Unit) *Mandate {
	if !m.valid {
		return m
	}

	switch unit {
	case Month:
		m.t = m.t.AddDate(0, n, 0)
	case Year:
		m.t = m.t.AddDate(n, 0, 0)
	default:
		if d, ok := fixedLengths[unit]; ok {
			ms := m.t.UnixMilli() + int64(n)*d.Milliseconds()
			m.t = time.UnixMilli(ms).In(m.t.Location())
		}
	}
	return m
}

// Sub moves m back by n units and returns m. See Add.
func (m *Mandate) Sub(n int, unit Unit) *Mandate {
	return m.Add(-n, unit)
}

// Increment moves m forward by one unit and returns m.
func (m *Mandate) Increment(unit Unit) *Mandate {
	return m.Add(1, unit)
}

// Decrement moves m back by one unit and returns m.
func (m *Mandate) Decrement(unit Unit) *Mandate {
	return m.Sub(1, unit)
}

func (m *Mandate) AddMilliseconds(n int) *Mandate { return m.Add(n, Millisecond) }
func (m *Mandate) AddSeconds(n int) *Mandate      { return m.Add(n, Second) }
func (m *Mandate) AddMinutes(n int) *Mandate      { return m.Add(n, Minute) }
func (m *Mandate) AddHours(n int) *Mandate        { return m.Add(n, Hour) }
func (m *Mandate) AddDays(n int) *Mandate         { return m.Add(n, Day) }
func (m *Mandate) AddWeeks(n int) *Mandate        { return m.Add(n, Week) }
func (m *Mandate) AddMonths(n int) *Mandate       { return m.Add(n, Month) }
func (m *Mandate) AddYears(n int) *Mandate        { return m.Add(n, Year) }

func (m *Mandate) SubMilliseconds(n int) *Mandate { return m.Sub(n, Millisecond) }
func (m *Mandate) SubSeconds(n int) *Mandate      { return m.Sub(n, Second) }
func (m *Mandate) SubMinutes(n int) *Mandate      { return m.Sub(n, Minute) }
func (m *Mandate) SubHours(n int) *Mandate        { return m.Sub(n, Hour) }
func (m *Mandate) SubDays(n int) *Mandate         { return m.Sub(n, Day) }
func (m *Mandate) SubWeeks(n int) *Mandate        { return m.Sub(n, Week) }
func (m *Mandate) SubMonths(n int) *Mandate       { return m.Sub(n, Month) }
func (m *Mandate) SubYears(n int) *Mandate        { return m.Sub(n, Year) }
