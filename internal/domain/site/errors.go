package site

import "errors"

var (
	ErrSiteNotFound       = errors.New("site not found")
	ErrSiteCodeExists     = errors.New("site code already exists in this tenant")
	ErrNegativeCapacity   = errors.New("capacity must be non-negative")
	ErrInvalidDay         = errors.New("opening hours keys must be day identifiers")
	ErrInvalidOpeningSpan = errors.New("opening hours start must precede end")
	ErrSiteInactive       = errors.New("site is inactive")
)
