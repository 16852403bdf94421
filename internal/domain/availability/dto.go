package availability

import (
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/validator"
)

type CreatePatternRequest struct {
	EmployeeID      string     `json:"employee_id"`
	PatternType     string     `json:"pattern_type"`
	TimeSlots       []TimeSlot `json:"time_slots"`
	ConfidenceLevel int        `json:"confidence_level"`
	ValidFrom       string     `json:"valid_from"`
	ValidUntil      *string    `json:"valid_until,omitempty"`
}

func (r CreatePatternRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsOneOf(r.PatternType, PatternTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "pattern_type", Message: "must be weekly or biweekly"})
	}
	if r.ConfidenceLevel < 1 || r.ConfidenceLevel > 5 {
		errs = append(errs, validator.ValidationError{Field: "confidence_level", Message: "must be between 1 and 5"})
	}
	for _, slot := range r.TimeSlots {
		if !slot.Valid() || !validator.IsValidTimeOfDay(slot.StartTime) || !validator.IsValidTimeOfDay(slot.EndTime) {
			errs = append(errs, validator.ValidationError{Field: "time_slots", Message: "day must be 0-6 and start must precede end"})
			break
		}
	}
	from, fromOK := validator.IsValidDate(r.ValidFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "valid_from", Message: "must be YYYY-MM-DD"})
	}
	if r.ValidUntil != nil {
		until, untilOK := validator.IsValidDate(*r.ValidUntil)
		if !untilOK {
			errs = append(errs, validator.ValidationError{Field: "valid_until", Message: "must be YYYY-MM-DD"})
		} else if fromOK && until.Before(from) {
			errs = append(errs, validator.ValidationError{Field: "valid_until", Message: "must not precede valid_from"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePatternRequest struct {
	PatternType     *string     `json:"pattern_type,omitempty"`
	TimeSlots       *[]TimeSlot `json:"time_slots,omitempty"`
	ConfidenceLevel *int        `json:"confidence_level,omitempty"`
	ValidFrom       *string     `json:"valid_from,omitempty"`
	ValidUntil      *string     `json:"valid_until,omitempty"`
	Active          *bool       `json:"active,omitempty"`
}

func (r UpdatePatternRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PatternType != nil && !validator.IsOneOf(*r.PatternType, PatternTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "pattern_type", Message: "must be weekly or biweekly"})
	}
	if r.ConfidenceLevel != nil && (*r.ConfidenceLevel < 1 || *r.ConfidenceLevel > 5) {
		errs = append(errs, validator.ValidationError{Field: "confidence_level", Message: "must be between 1 and 5"})
	}
	if r.TimeSlots != nil {
		for _, slot := range *r.TimeSlots {
			if !slot.Valid() {
				errs = append(errs, validator.ValidationError{Field: "time_slots", Message: "day must be 0-6 and start must precede end"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateExceptionRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}

func (r CreateExceptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsOneOf(r.Type, ExceptionTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be AVAILABLE or UNAVAILABLE"})
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PatternResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	PatternType     string     `json:"pattern_type"`
	TimeSlots       []TimeSlot `json:"time_slots"`
	ConfidenceLevel int        `json:"confidence_level"`
	ValidFrom       string     `json:"valid_from"`
	ValidUntil      *string    `json:"valid_until,omitempty"`
	Active          bool       `json:"active"`
}

type ExceptionResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	Reason     *string `json:"reason,omitempty"`
	Approved   bool    `json:"approved"`
}

// DayAvailability is the resolved availability of one employee for one
// date: patterns intersected with approved exceptions and approved
// leave.
type DayAvailability struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Available  bool    `json:"available"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	Source     string  `json:"source"` // pattern | exception | leave | none
}
