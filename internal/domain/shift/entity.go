package shift

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Shift is a schedulable slot at a site.
type Shift struct {
	ID           string
	TenantID     string
	SiteID       string
	Date         time.Time
	StartTime    string
	EndTime      string
	Requirements Requirements
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Assignments []Assignment
}

// Requirements describe the staffing a shift needs. Stored as JSONB.
type Requirements struct {
	MinEmployees   int      `json:"min_employees"`
	MaxEmployees   int      `json:"max_employees"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

func (r Requirements) Valid() bool {
	return r.MinEmployees >= 0 && r.MinEmployees <= r.MaxEmployees
}

// Value implements driver.Valuer for database storage
func (r Requirements) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner for database retrieval
func (r *Requirements) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Requirements: invalid type")
	}

	return json.Unmarshal(bytes, r)
}

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusOpen      Status = "OPEN"
	StatusClosed    Status = "CLOSED"
	StatusPublished Status = "PUBLISHED"
	StatusCompleted Status = "COMPLETED"
)

var StatusValues = []string{
	string(StatusDraft),
	string(StatusOpen),
	string(StatusClosed),
	string(StatusPublished),
	string(StatusCompleted),
}

// transitions holds the legal status graph:
// DRAFT -> OPEN -> {CLOSED, PUBLISHED} -> COMPLETED.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusOpen},
	StatusOpen:      {StatusClosed, StatusPublished},
	StatusClosed:    {StatusCompleted},
	StatusPublished: {StatusCompleted},
	StatusCompleted: {},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Assignment binds an employee to a shift. At most one assignment
// exists per (shift, employee) pair.
type Assignment struct {
	ID         string
	TenantID   string
	ShiftID    string
	EmployeeID string
	Status     AssignmentStatus
	Role       *string
	// Score is produced by the external planning engine; opaque here.
	Score     *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AssignmentStatus string

const (
	AssignmentStatusProposed  AssignmentStatus = "PROPOSED"
	AssignmentStatusConfirmed AssignmentStatus = "CONFIRMED"
	AssignmentStatusDeclined  AssignmentStatus = "DECLINED"
)

var AssignmentStatusValues = []string{
	string(AssignmentStatusProposed),
	string(AssignmentStatusConfirmed),
	string(AssignmentStatusDeclined),
}
