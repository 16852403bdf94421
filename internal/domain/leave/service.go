package leave

import "context"

type LeaveService interface {
	ListLeaves(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)
	GetLeave(ctx context.Context, id string) (LeaveResponse, error)
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ApproveLeave(ctx context.Context, id string, req ProcessLeaveRequest) error
	RejectLeave(ctx context.Context, id string, req ProcessLeaveRequest) error
	CancelLeave(ctx context.Context, id string) error
	GetSummary(ctx context.Context, employeeID string, year int) (Summary, error)
}
