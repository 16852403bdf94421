package availability

import (
	"testing"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/availability"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPatternSlotFor_Weekly(t *testing.T) {
	// 2026-03-02 is a Monday.
	p := availability.Pattern{
		PatternType: availability.PatternTypeWeekly,
		ValidFrom:   day(2026, 3, 2),
		TimeSlots: availability.TimeSlots{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Available: true},
			{DayOfWeek: 3, StartTime: "14:00", EndTime: "20:00", Available: true},
		},
	}

	slot, ok := patternSlotFor(p, day(2026, 3, 9)) // Monday
	assert.True(t, ok)
	assert.Equal(t, "09:00", slot.StartTime)

	slot, ok = patternSlotFor(p, day(2026, 3, 11)) // Wednesday
	assert.True(t, ok)
	assert.Equal(t, "14:00", slot.StartTime)

	_, ok = patternSlotFor(p, day(2026, 3, 10)) // Tuesday, no slot
	assert.False(t, ok)
}

func TestPatternSlotFor_ValidityWindow(t *testing.T) {
	until := day(2026, 3, 16)
	p := availability.Pattern{
		PatternType: availability.PatternTypeWeekly,
		ValidFrom:   day(2026, 3, 2),
		ValidUntil:  &until,
		TimeSlots: availability.TimeSlots{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Available: true},
		},
	}

	_, ok := patternSlotFor(p, day(2026, 2, 23)) // Monday before valid_from
	assert.False(t, ok)

	_, ok = patternSlotFor(p, day(2026, 3, 2)) // valid_from itself
	assert.True(t, ok)

	_, ok = patternSlotFor(p, day(2026, 3, 16)) // valid_until itself, inclusive
	assert.True(t, ok)

	_, ok = patternSlotFor(p, day(2026, 3, 23)) // Monday after valid_until
	assert.False(t, ok)
}

func TestPatternSlotFor_BiweeklyParity(t *testing.T) {
	// valid_from is Wednesday 2026-03-04; its week starts Monday 2026-03-02.
	p := availability.Pattern{
		PatternType: availability.PatternTypeBiweekly,
		ValidFrom:   day(2026, 3, 4),
		TimeSlots: availability.TimeSlots{
			{DayOfWeek: 5, StartTime: "09:00", EndTime: "13:00", Available: true},
		},
	}

	_, ok := patternSlotFor(p, day(2026, 3, 6)) // Friday of the first week
	assert.True(t, ok)

	_, ok = patternSlotFor(p, day(2026, 3, 13)) // Friday of the off week
	assert.False(t, ok)

	_, ok = patternSlotFor(p, day(2026, 3, 20)) // Friday two weeks on
	assert.True(t, ok)

	_, ok = patternSlotFor(p, day(2026, 3, 27)) // off week again
	assert.False(t, ok)
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{day(2026, 3, 2), day(2026, 3, 2)},  // Monday maps to itself
		{day(2026, 3, 4), day(2026, 3, 2)},  // Wednesday
		{day(2026, 3, 8), day(2026, 3, 2)},  // Sunday belongs to the preceding Monday
		{day(2026, 3, 9), day(2026, 3, 9)},  // next Monday
	}
	for _, c := range cases {
		got := startOfWeek(c.in)
		if !got.Equal(c.want) {
			t.Errorf("startOfWeek(%s) = %s, want %s", c.in.Format("2006-01-02"), got.Format("2006-01-02"), c.want.Format("2006-01-02"))
		}
	}
}
