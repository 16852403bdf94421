package employee

import "context"

type EmployeeService interface {
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, int64, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	GetEmployeeCard(ctx context.Context, id string) (EmployeeCardResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) error
	// ArchiveEmployee moves the employee to ARCHIVED. Archiving an
	// already-archived employee is a no-op, not an error.
	ArchiveEmployee(ctx context.Context, id string) error
	RestoreEmployee(ctx context.Context, id string) error
	GetRoster(ctx context.Context) ([]EmployeeCardResponse, error)
}
