package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2026, 3, 10), date(2026, 3, 10), 1},
		{"one week inclusive", date(2026, 3, 2), date(2026, 3, 8), 7},
		{"across month boundary", date(2026, 1, 30), date(2026, 2, 2), 4},
		{"across leap day", date(2028, 2, 28), date(2028, 3, 1), 3},
		{"end before start", date(2026, 3, 10), date(2026, 3, 9), 0},
		{"ignores time of day", date(2026, 3, 10).Add(23 * time.Hour), date(2026, 3, 11), 2},
	}
	for _, c := range cases {
		got := DaysBetween(c.start, c.end)
		if got != c.want {
			t.Errorf("%s: DaysBetween = %d, want %d", c.name, got, c.want)
		}
	}
}
