package leave

import (
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`
}

func (r CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsOneOf(r.LeaveType, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be one of annual, sick, unpaid, other"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not precede start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessLeaveRequest struct {
	ApproverID string `json:"approver_id"`
}

type LeaveFilter struct {
	EmployeeID *string
	Status     *string
	Year       *int
}

type LeaveResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	LeaveType   string  `json:"leave_type"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	DaysCount   int     `json:"days_count"`
	Status      string  `json:"status"`
	Reason      *string `json:"reason,omitempty"`
	ApproverID  *string `json:"approver_id,omitempty"`
	ProcessedAt *string `json:"processed_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
