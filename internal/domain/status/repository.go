package status

import "context"

type StatusRepository interface {
	GetByCode(ctx context.Context, tenantID string, code string) (EmployeeStatus, error)
	ExistsByCode(ctx context.Context, tenantID string, code string) (bool, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]EmployeeStatus, error)
	Create(ctx context.Context, newStatus EmployeeStatus) (EmployeeStatus, error)
	Update(ctx context.Context, tenantID string, code string, req UpdateStatusRequest) error
}
