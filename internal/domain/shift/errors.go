package shift

import "errors"

var (
	ErrShiftNotFound           = errors.New("shift not found")
	ErrInvalidRequirements     = errors.New("min employees must not exceed max employees")
	ErrInvalidTimeSpan         = errors.New("shift start time must precede end time")
	ErrInvalidStatus           = errors.New("invalid shift status")
	ErrIllegalStatusTransition = errors.New("illegal shift status transition")
	ErrAssignmentNotFound      = errors.New("assignment not found")
	ErrAlreadyAssigned         = errors.New("employee is already assigned to this shift")
	ErrShiftNotOpen            = errors.New("shift is not open for assignment")
)
