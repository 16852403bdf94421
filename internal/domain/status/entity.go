package status

import "time"

// EmployeeStatus classifies employees for hour limits and student
// rules. Statuses are tenant-scoped master data.
type EmployeeStatus struct {
	ID        string
	TenantID  string
	Code      string
	Label     string
	Limits    HoursLimits
	IsStudent bool
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoursLimits are the maximum schedulable hours per period. All values
// are non-negative; zero means no limit is enforced for that period.
type HoursLimits struct {
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

func (l HoursLimits) Valid() bool {
	return l.Weekly >= 0 && l.Monthly >= 0 && l.Yearly >= 0
}
