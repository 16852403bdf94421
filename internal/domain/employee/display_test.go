package employee

import (
	"testing"
	"time"
)

func TestInitials(t *testing.T) {
	cases := []struct {
		firstName string
		lastName  string
		want      string
	}{
		{"Marie", "Dupont", "MD"},
		{"jean", "martin", "JM"},
		{"  Anna", "  Schmidt", "AS"},
		{"Marie", "", "M"},
		{"", "Dupont", "D"},
		{"", "", ""},
		{"élodie", "dubois", "ÉD"},
	}
	for _, c := range cases {
		got := Initials(c.firstName, c.lastName)
		if got != c.want {
			t.Errorf("Initials(%q, %q) = %q, want %q", c.firstName, c.lastName, got, c.want)
		}
	}
}

func TestHoursProgress(t *testing.T) {
	cases := []struct {
		monthly float64
		max     float64
		want    float64
	}{
		{80, 160, 50},
		{145, 160, 90.625},
		{160, 160, 100},
		{170, 160, 106.25},
		{0, 160, 0},
		{80, 0, 0},
		{80, -10, 0},
	}
	for _, c := range cases {
		got := HoursProgress(c.monthly, c.max)
		if got != c.want {
			t.Errorf("HoursProgress(%v, %v) = %v, want %v", c.monthly, c.max, got, c.want)
		}
	}
}

func TestProgressTier(t *testing.T) {
	cases := []struct {
		percentage float64
		want       Tier
	}{
		{0, TierNormal},
		{50, TierNormal},
		{75, TierNormal},
		{75.01, TierWarning},
		{90, TierWarning},
		{90.625, TierCritical},
		{90.01, TierCritical},
		{100, TierCritical},
		{120, TierCritical},
	}
	for _, c := range cases {
		got := ProgressTier(c.percentage)
		if got != c.want {
			t.Errorf("ProgressTier(%v) = %v, want %v", c.percentage, got, c.want)
		}
	}
}

type fixedCalendar struct {
	inExam bool
}

func (c fixedCalendar) InExamPeriod(time.Time) bool { return c.inExam }

func TestStudentStatus(t *testing.T) {
	now := time.Now()

	badge, ok := StudentStatus(false, fixedCalendar{inExam: true}, now)
	if ok || badge != "" {
		t.Errorf("StudentStatus(non-student) = (%q, %v), want no badge", badge, ok)
	}

	badge, ok = StudentStatus(true, fixedCalendar{inExam: true}, now)
	if !ok || badge != StudentBadgeExamLockout {
		t.Errorf("StudentStatus(student, exam) = (%q, %v), want EXAM-LOCKOUT", badge, ok)
	}

	badge, ok = StudentStatus(true, fixedCalendar{inExam: false}, now)
	if !ok || badge != StudentBadgeAvailable {
		t.Errorf("StudentStatus(student, no exam) = (%q, %v), want AVAILABLE", badge, ok)
	}

	badge, ok = StudentStatus(true, nil, now)
	if !ok || badge != StudentBadgeAvailable {
		t.Errorf("StudentStatus(student, nil calendar) = (%q, %v), want AVAILABLE", badge, ok)
	}
}

func TestAvailabilityBadge(t *testing.T) {
	if AvailabilityBadge(true) {
		t.Error("AvailabilityBadge(true) = true, want false")
	}
	if !AvailabilityBadge(false) {
		t.Error("AvailabilityBadge(false) = false, want true")
	}
}
