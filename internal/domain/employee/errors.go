package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeNumberExists   = errors.New("employee number already exists in this tenant")
	ErrInvalidContractType    = errors.New("invalid contract type")
	ErrInvalidExperienceLevel = errors.New("invalid experience level")
	ErrInvalidWeeklyHours     = errors.New("weekly hours must be between 0 and 60")
	ErrInvalidHourlyRate      = errors.New("hourly rate must be non-negative")
	ErrFutureHireDate         = errors.New("hire date cannot be in the future")
	ErrEmployeeArchived       = errors.New("employee is archived")
	ErrEmployeeNotArchived    = errors.New("employee is not archived")
	ErrUnknownStatusCode      = errors.New("unknown employee status code")
)
