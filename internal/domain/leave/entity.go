package leave

import "time"

// EmployeeLeave is a leave request.
type EmployeeLeave struct {
	ID          string
	TenantID    string
	EmployeeID  string
	LeaveType   LeaveType
	StartDate   time.Time
	EndDate     time.Time
	DaysCount   int
	Status      Status
	Reason      *string
	ApproverID  *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "annual"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
	LeaveTypeOther  LeaveType = "other"
)

var LeaveTypeValues = []string{
	string(LeaveTypeAnnual),
	string(LeaveTypeSick),
	string(LeaveTypeUnpaid),
	string(LeaveTypeOther),
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusCancelled),
}

// DaysBetween returns the inclusive calendar-day span of a leave.
func DaysBetween(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if endDay.Before(startDay) {
		return 0
	}
	return int(endDay.Sub(startDay).Hours()/24) + 1
}

// Summary is the derived balance snapshot for one employee. It is
// recomputed whenever the underlying leave set changes; only APPROVED
// leaves consume balances, and remaining values never go negative.
type Summary struct {
	EmployeeID       string  `json:"employee_id"`
	AnnualAllotted   float64 `json:"annual_allotted"`
	AnnualUsed       float64 `json:"annual_used"`
	AnnualRemaining  float64 `json:"annual_remaining"`
	SickAllotted     float64 `json:"sick_allotted"`
	SickUsed         float64 `json:"sick_used"`
	SickRemaining    float64 `json:"sick_remaining"`
	PendingLeaves    int     `json:"pending_leaves"`
	Year             int     `json:"year"`
}
