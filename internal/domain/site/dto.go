package site

import (
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/validator"
)

type CreateSiteRequest struct {
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	Address      *string      `json:"address,omitempty"`
	ContactInfo  *string      `json:"contact_info,omitempty"`
	OpeningHours OpeningHours `json:"opening_hours,omitempty"`
	ManagerID    *string      `json:"manager_id,omitempty"`
	Capacity     int          `json:"capacity"`
}

func (r CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Capacity < 0 {
		errs = append(errs, validator.ValidationError{Field: "capacity", Message: "must be non-negative"})
	}
	errs = append(errs, validateOpeningHours(r.OpeningHours)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateOpeningHours(oh OpeningHours) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for day, hours := range oh {
		if !validator.IsOneOf(day, DayIdentifiers) {
			errs = append(errs, validator.ValidationError{Field: "opening_hours." + day, Message: "is not a day identifier"})
			continue
		}
		if !validator.IsValidTimeOfDay(hours.Start) || !validator.IsValidTimeOfDay(hours.End) {
			errs = append(errs, validator.ValidationError{Field: "opening_hours." + day, Message: "start and end must be HH:MM"})
			continue
		}
		if hours.Start >= hours.End {
			errs = append(errs, validator.ValidationError{Field: "opening_hours." + day, Message: "start must precede end"})
		}
	}
	return errs
}

type UpdateSiteRequest struct {
	Name         *string       `json:"name,omitempty"`
	Address      *string       `json:"address,omitempty"`
	ContactInfo  *string       `json:"contact_info,omitempty"`
	OpeningHours *OpeningHours `json:"opening_hours,omitempty"`
	ManagerID    *string       `json:"manager_id,omitempty"`
	Capacity     *int          `json:"capacity,omitempty"`
	Active       *bool         `json:"active,omitempty"`
}

func (r UpdateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Capacity != nil && *r.Capacity < 0 {
		errs = append(errs, validator.ValidationError{Field: "capacity", Message: "must be non-negative"})
	}
	if r.OpeningHours != nil {
		errs = append(errs, validateOpeningHours(*r.OpeningHours)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SiteResponse struct {
	ID           string       `json:"id"`
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	Address      *string      `json:"address,omitempty"`
	ContactInfo  *string      `json:"contact_info,omitempty"`
	OpeningHours OpeningHours `json:"opening_hours,omitempty"`
	ManagerID    *string      `json:"manager_id,omitempty"`
	Capacity     int          `json:"capacity"`
	Active       bool         `json:"active"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
}
