package staffing

import "time"

const DayFormat = "2006-01-02"

// Calendar answers working-day questions for the flow graph: weekends are
// never working days, holidays block either every location (empty Location)
// or one specific location.
type Calendar struct {
	global map[string]struct{}
	local  map[string]map[string]struct{}
}

func NewCalendar(holidays []Holiday) Calendar {
	c := Calendar{
		global: make(map[string]struct{}),
		local:  make(map[string]map[string]struct{}),
	}
	for _, h := range holidays {
		if h.Location == "" {
			c.global[h.Day] = struct{}{}
			continue
		}
		byDay := c.local[h.Location]
		if byDay == nil {
			byDay = make(map[string]struct{})
			c.local[h.Location] = byDay
		}
		byDay[h.Day] = struct{}{}
	}
	return c
}

// IsWorkingDay reports whether day (in DayFormat) is a weekday that is not a
// holiday for the given location. Unparseable days are not working days.
func (c Calendar) IsWorkingDay(day string, location string) bool {
	t, err := time.Parse(DayFormat, day)
	if err != nil {
		return false
	}
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	if _, ok := c.global[day]; ok {
		return false
	}
	if byDay, ok := c.local[location]; ok {
		if _, ok := byDay[day]; ok {
			return false
		}
	}
	return true
}
