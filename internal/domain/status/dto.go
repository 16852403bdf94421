package status

import (
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/validator"
)

type CreateStatusRequest struct {
	Code      string      `json:"code"`
	Label     string      `json:"label"`
	Limits    HoursLimits `json:"hours_limits"`
	IsStudent bool        `json:"is_student"`
	Color     string      `json:"color,omitempty"`
}

func (r CreateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{Field: "label", Message: "is required"})
	}
	if !r.Limits.Valid() {
		errs = append(errs, validator.ValidationError{Field: "hours_limits", Message: "values must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Label     *string      `json:"label,omitempty"`
	Limits    *HoursLimits `json:"hours_limits,omitempty"`
	IsStudent *bool        `json:"is_student,omitempty"`
	Color     *string      `json:"color,omitempty"`
}

func (r UpdateStatusRequest) Validate() error {
	if r.Limits != nil && !r.Limits.Valid() {
		return validator.ValidationErrors{{Field: "hours_limits", Message: "values must be non-negative"}}
	}
	return nil
}

type StatusResponse struct {
	ID        string      `json:"id"`
	Code      string      `json:"code"`
	Label     string      `json:"label"`
	Limits    HoursLimits `json:"hours_limits"`
	IsStudent bool        `json:"is_student"`
	Color     string      `json:"color"`
}
