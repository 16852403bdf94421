package shift

import (
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/validator"
)

type CreateShiftRequest struct {
	SiteID       string       `json:"site_id"`
	Date         string       `json:"date"`
	StartTime    string       `json:"start_time"`
	EndTime      string       `json:"end_time"`
	Requirements Requirements `json:"requirements"`
}

func (r CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{Field: "site_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) || !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start and end must be HH:MM"})
	} else if r.StartTime >= r.EndTime {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must precede end_time"})
	}
	if !r.Requirements.Valid() {
		errs = append(errs, validator.ValidationError{Field: "requirements", Message: "min_employees must not exceed max_employees"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	Date         *string       `json:"date,omitempty"`
	StartTime    *string       `json:"start_time,omitempty"`
	EndTime      *string       `json:"end_time,omitempty"`
	Requirements *Requirements `json:"requirements,omitempty"`
}

func (r UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}
	if r.StartTime != nil && r.EndTime != nil && *r.StartTime >= *r.EndTime {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must precede end_time"})
	}
	if r.Requirements != nil && !r.Requirements.Valid() {
		errs = append(errs, validator.ValidationError{Field: "requirements", Message: "min_employees must not exceed max_employees"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionShiftRequest struct {
	Status string `json:"status"`
}

func (r TransitionShiftRequest) Validate() error {
	if !validator.IsOneOf(r.Status, StatusValues) {
		return validator.ValidationErrors{{Field: "status", Message: "must be one of DRAFT, OPEN, CLOSED, PUBLISHED, COMPLETED"}}
	}
	return nil
}

type ProposeAssignmentRequest struct {
	EmployeeID string  `json:"employee_id"`
	Role       *string `json:"role,omitempty"`
}

func (r ProposeAssignmentRequest) Validate() error {
	if validator.IsEmpty(r.EmployeeID) {
		return validator.ValidationErrors{{Field: "employee_id", Message: "is required"}}
	}
	return nil
}

type ShiftFilter struct {
	SiteID   *string
	DateFrom *string
	DateTo   *string
	Status   *string
}

type ShiftResponse struct {
	ID           string               `json:"id"`
	SiteID       string               `json:"site_id"`
	Date         string               `json:"date"`
	StartTime    string               `json:"start_time"`
	EndTime      string               `json:"end_time"`
	Requirements Requirements         `json:"requirements"`
	Status       string               `json:"status"`
	Assignments  []AssignmentResponse `json:"assignments"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}

type AssignmentResponse struct {
	ID         string   `json:"id"`
	ShiftID    string   `json:"shift_id"`
	EmployeeID string   `json:"employee_id"`
	Status     string   `json:"status"`
	Role       *string  `json:"role,omitempty"`
	Score      *float64 `json:"score,omitempty"`
}
