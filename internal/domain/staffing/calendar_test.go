package staffing

import "testing"

func TestCalendar_IsWorkingDay(t *testing.T) {
	cal := NewCalendar([]Holiday{
		{Day: "2024-12-25", Location: ""},
		{Day: "2024-12-07", Location: "MXP"},
	})

	cases := []struct {
		day      string
		location string
		want     bool
	}{
		{"2024-01-02", "MXP", true},  // Tuesday
		{"2024-01-06", "MXP", false}, // Saturday
		{"2024-01-07", "MXP", false}, // Sunday
		{"2024-12-25", "JFK", false}, // global holiday
		{"2024-12-07", "MXP", false}, // Saturday anyway, and local holiday
		{"2024-12-06", "MXP", true},  // Friday before it
		{"not-a-date", "MXP", false},
	}
	for _, c := range cases {
		if got := cal.IsWorkingDay(c.day, c.location); got != c.want {
			t.Fatalf("IsWorkingDay(%q, %q) = %v, want %v", c.day, c.location, got, c.want)
		}
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.Year != 2024 || int(m.Month) != 2 {
		t.Fatalf("unexpected month: %+v", m)
	}
	if m.String() != "2024-02" {
		t.Fatalf("String() = %q", m.String())
	}
	if !m.Contains("2024-02-01") || !m.Contains("2024-02-29") {
		t.Fatalf("month bounds must be inclusive")
	}
	if m.Contains("2024-01-31") || m.Contains("2024-03-01") || m.Contains("bogus") {
		t.Fatalf("out-of-month days must be excluded")
	}

	if _, err := ParseMonth("02-2024"); err == nil {
		t.Fatalf("expected parse error")
	}
}
