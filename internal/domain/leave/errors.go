package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrInvalidLeaveType      = errors.New("invalid leave type")
	ErrInvalidDateRange      = errors.New("end date must not precede start date")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrInsufficientBalance   = errors.New("insufficient leave balance")
	ErrOverlappingLeave      = errors.New("an approved or pending leave overlaps this period")
)
