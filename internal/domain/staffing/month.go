package staffing

import (
	"fmt"
	"time"
)

// Month identifies one calendar month for flow-graph scoping.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses "2006-01" style input.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Contains reports whether day (in DayFormat) falls inside the month,
// first and last day inclusive. Unparseable days are outside every month.
func (m Month) Contains(day string) bool {
	t, err := time.Parse(DayFormat, day)
	if err != nil {
		return false
	}
	return t.Year() == m.Year && t.Month() == m.Month
}
