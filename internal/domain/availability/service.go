package availability

import "context"

type AvailabilityService interface {
	ListPatterns(ctx context.Context, employeeID string, activeOnly bool) ([]PatternResponse, error)
	CreatePattern(ctx context.Context, req CreatePatternRequest) (PatternResponse, error)
	UpdatePattern(ctx context.Context, id string, req UpdatePatternRequest) error

	CreateException(ctx context.Context, req CreateExceptionRequest) (ExceptionResponse, error)
	ApproveException(ctx context.Context, id string) error
	DeleteException(ctx context.Context, id string) error

	// ResolveDay derives one employee's availability for one date from
	// active patterns, approved exceptions, and approved leave.
	ResolveDay(ctx context.Context, employeeID string, date string) (DayAvailability, error)
}
