package availability

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Pattern is a recurring availability declaration for one employee.
type Pattern struct {
	ID              string
	TenantID        string
	EmployeeID      string
	PatternType     PatternType
	TimeSlots       TimeSlots
	ConfidenceLevel int // 1..5
	ValidFrom       time.Time
	ValidUntil      *time.Time
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PatternType string

const (
	PatternTypeWeekly   PatternType = "weekly"
	PatternTypeBiweekly PatternType = "biweekly"
)

var PatternTypeValues = []string{
	string(PatternTypeWeekly),
	string(PatternTypeBiweekly),
}

// TimeSlot is a recurring weekly window. DayOfWeek follows time.Weekday
// numbering (0=Sunday .. 6=Saturday).
type TimeSlot struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

func (s TimeSlot) Valid() bool {
	return s.DayOfWeek >= 0 && s.DayOfWeek <= 6 && s.StartTime < s.EndTime
}

// TimeSlots is stored as a JSONB list on the pattern row.
type TimeSlots []TimeSlot

// Value implements driver.Valuer for database storage
func (ts TimeSlots) Value() (driver.Value, error) {
	if len(ts) == 0 {
		return nil, nil
	}
	return json.Marshal(ts)
}

// Scan implements sql.Scanner for database retrieval
func (ts *TimeSlots) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TimeSlots: invalid type")
	}

	return json.Unmarshal(bytes, ts)
}

// Exception is a one-off override of a pattern for a single date.
// Unapproved exceptions never affect derived availability.
type Exception struct {
	ID         string
	TenantID   string
	EmployeeID string
	Date       time.Time
	Type       ExceptionType
	StartTime  *string
	EndTime    *string
	Reason     *string
	Approved   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ExceptionType string

const (
	ExceptionTypeAvailable   ExceptionType = "AVAILABLE"
	ExceptionTypeUnavailable ExceptionType = "UNAVAILABLE"
)

var ExceptionTypeValues = []string{
	string(ExceptionTypeAvailable),
	string(ExceptionTypeUnavailable),
}
