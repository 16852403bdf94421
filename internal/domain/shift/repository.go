package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	GetByID(ctx context.Context, tenantID string, id string) (Shift, error)
	List(ctx context.Context, tenantID string, filter ShiftFilter) ([]Shift, error)
	Create(ctx context.Context, newShift Shift) (Shift, error)
	Update(ctx context.Context, tenantID string, id string, req UpdateShiftRequest) error
	SetStatus(ctx context.Context, tenantID string, id string, status Status) error
	Delete(ctx context.Context, tenantID string, id string) error
	// CompleteElapsed moves published and closed shifts dated before
	// asOf to COMPLETED across all tenants. Used by the scheduler.
	CompleteElapsed(ctx context.Context, asOf time.Time) (int64, error)
}

type AssignmentRepository interface {
	GetByID(ctx context.Context, tenantID string, id string) (Assignment, error)
	GetByShiftAndEmployee(ctx context.Context, tenantID string, shiftID, employeeID string) (Assignment, error)
	ListByShiftID(ctx context.Context, tenantID string, shiftID string) ([]Assignment, error)
	ListByEmployeeAndDateRange(ctx context.Context, tenantID string, employeeID string, dateFrom, dateTo string) ([]Assignment, error)
	Create(ctx context.Context, newAssignment Assignment) (Assignment, error)
	SetStatus(ctx context.Context, tenantID string, id string, status AssignmentStatus) error
	SetScore(ctx context.Context, tenantID string, id string, score float64) error
}
