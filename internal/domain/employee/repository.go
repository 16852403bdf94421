package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, tenantID string, id string) (Employee, error)
	GetByIDWithStatus(ctx context.Context, tenantID string, id string) (EmployeeWithStatus, error)
	GetByEmployeeNumber(ctx context.Context, tenantID string, employeeNumber string) (Employee, error)
	// GetActiveByPhoneNumber searches across tenants; it backs the
	// phone-based sign-in before any tenant is known.
	GetActiveByPhoneNumber(ctx context.Context, phoneNumber string) (Employee, error)
	ExistsByEmployeeNumber(ctx context.Context, tenantID string, employeeNumber string) (bool, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, tenantID string, id string, req UpdateEmployeeRequest) error
	List(ctx context.Context, tenantID string, filter EmployeeFilter) ([]EmployeeWithStatus, int64, error)
	GetActiveByTenantID(ctx context.Context, tenantID string) ([]EmployeeWithStatus, error)
	SetLifecycle(ctx context.Context, tenantID string, id string, lifecycle Lifecycle) error
}
