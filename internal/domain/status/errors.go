package status

import "errors"

var (
	ErrStatusNotFound    = errors.New("employee status not found")
	ErrStatusCodeExists  = errors.New("status code already exists in this tenant")
	ErrNegativeHoursLimit = errors.New("hours limits must be non-negative")
)
