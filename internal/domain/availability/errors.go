package availability

import "errors"

var (
	ErrPatternNotFound          = errors.New("availability pattern not found")
	ErrExceptionNotFound        = errors.New("availability exception not found")
	ErrInvalidConfidenceLevel   = errors.New("confidence level must be between 1 and 5")
	ErrInvalidValidity          = errors.New("valid_until must not precede valid_from")
	ErrInvalidTimeSlot          = errors.New("time slot day must be 0-6 and start must precede end")
	ErrInvalidExceptionType     = errors.New("exception type must be AVAILABLE or UNAVAILABLE")
	ErrExceptionAlreadyApproved = errors.New("exception is already approved")
)
