package employee

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Presentation-only derivations for employee cards. All functions here
// are pure; they never mutate the entities they read.

// Initials returns the avatar fallback text: first letter of the first
// name followed by first letter of the last name, uppercased. Empty
// name parts contribute nothing, so the result may be partial or empty.
func Initials(firstName, lastName string) string {
	var b strings.Builder
	if r, size := utf8.DecodeRuneInString(strings.TrimSpace(firstName)); size > 0 && r != utf8.RuneError {
		b.WriteString(strings.ToUpper(string(r)))
	}
	if r, size := utf8.DecodeRuneInString(strings.TrimSpace(lastName)); size > 0 && r != utf8.RuneError {
		b.WriteString(strings.ToUpper(string(r)))
	}
	return b.String()
}

// HoursProgress returns the monthly hours quota as a percentage used to
// size the progress indicator. A non-positive quota yields 0 rather
// than dividing by zero.
func HoursProgress(monthlyHours, maxMonthlyHours float64) float64 {
	if maxMonthlyHours <= 0 {
		return 0
	}
	return monthlyHours / maxMonthlyHours * 100
}

// Tier is the three-level hours quota classification.
type Tier string

const (
	TierNormal   Tier = "normal"
	TierWarning  Tier = "warning"
	TierCritical Tier = "critical"
)

// ProgressTier classifies a quota percentage. Boundaries are strict:
// exactly 75 is normal, exactly 90 is warning.
func ProgressTier(percentage float64) Tier {
	switch {
	case percentage > 90:
		return TierCritical
	case percentage > 75:
		return TierWarning
	default:
		return TierNormal
	}
}

// ExamCalendar decides whether a date falls inside an academic exam
// window. The real calendar rule is an open business question; until it
// is supplied, NoExamCalendar keeps student badges on AVAILABLE.
type ExamCalendar interface {
	InExamPeriod(at time.Time) bool
}

// NoExamCalendar reports no exam windows.
type NoExamCalendar struct{}

func (NoExamCalendar) InExamPeriod(time.Time) bool { return false }

// StudentBadge is the derived status shown on student employee cards.
type StudentBadge string

const (
	StudentBadgeExamLockout StudentBadge = "EXAM-LOCKOUT"
	StudentBadgeAvailable   StudentBadge = "AVAILABLE"
)

// StudentStatus yields the exam-period badge for student employees.
// Non-students have no badge at all; the second return value reports
// presence.
func StudentStatus(isStudent bool, calendar ExamCalendar, at time.Time) (StudentBadge, bool) {
	if !isStudent {
		return "", false
	}
	if calendar != nil && calendar.InExamPeriod(at) {
		return StudentBadgeExamLockout, true
	}
	return StudentBadgeAvailable, true
}

// AvailabilityBadge reports whether the unavailable-today warning badge
// should show.
func AvailabilityBadge(isAvailableToday bool) bool {
	return !isAvailableToday
}
