package planning

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Generation records one run of the external scheduling engine. The
// engine itself lives outside this service; only the run lifecycle and
// its result payload are tracked here.
type Generation struct {
	ID          string
	TenantID    string
	PeriodStart time.Time
	PeriodEnd   time.Time
	SiteIDs     []string
	Status      Status
	Results     *Results
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string

const (
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
	StatusApplied   Status = "APPLIED"
	StatusFailed    Status = "FAILED"
)

var StatusValues = []string{
	string(StatusRunning),
	string(StatusCompleted),
	string(StatusApplied),
	string(StatusFailed),
}

// HasResults reports whether a generation in this status may carry a
// results payload.
func (s Status) HasResults() bool {
	return s == StatusCompleted || s == StatusApplied
}

// Results is the engine output: an overall score, detected conflicts,
// per-site coverage, and the assignment proposals to materialize on
// apply. Opaque beyond its shape; stored as JSONB.
type Results struct {
	Score     float64            `json:"score"`
	Conflicts []Conflict         `json:"conflicts,omitempty"`
	Coverage  map[string]float64 `json:"coverage,omitempty"`
	Proposals []Proposal         `json:"proposals,omitempty"`
}

// Proposal is one engine-suggested shift assignment.
type Proposal struct {
	ShiftID    string  `json:"shift_id"`
	EmployeeID string  `json:"employee_id"`
	Role       *string `json:"role,omitempty"`
	Score      float64 `json:"score"`
}

type Conflict struct {
	ShiftID    string `json:"shift_id"`
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
	Detail     string `json:"detail,omitempty"`
}

// Value implements driver.Valuer for database storage
func (r Results) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner for database retrieval
func (r *Results) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Results: invalid type")
	}

	return json.Unmarshal(bytes, r)
}
