package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	GetByID(ctx context.Context, tenantID string, id string) (EmployeeLeave, error)
	List(ctx context.Context, tenantID string, filter LeaveFilter) ([]EmployeeLeave, error)
	ListByEmployeeAndYear(ctx context.Context, tenantID string, employeeID string, year int) ([]EmployeeLeave, error)
	HasOverlapping(ctx context.Context, tenantID string, employeeID string, start, end time.Time) (bool, error)
	ApprovedOnDate(ctx context.Context, tenantID string, employeeID string, date time.Time) (bool, error)
	Create(ctx context.Context, newLeave EmployeeLeave) (EmployeeLeave, error)
	SetStatus(ctx context.Context, tenantID string, id string, status Status, approverID *string) error
}
