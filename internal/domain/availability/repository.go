package availability

import (
	"context"
	"time"
)

type PatternRepository interface {
	GetByID(ctx context.Context, tenantID string, id string) (Pattern, error)
	ListByEmployeeID(ctx context.Context, tenantID string, employeeID string, activeOnly bool) ([]Pattern, error)
	Create(ctx context.Context, newPattern Pattern) (Pattern, error)
	Update(ctx context.Context, tenantID string, id string, req UpdatePatternRequest) error
	DeactivateExpired(ctx context.Context, asOf time.Time) (int64, error)
}

type ExceptionRepository interface {
	GetByID(ctx context.Context, tenantID string, id string) (Exception, error)
	ListByEmployeeAndDate(ctx context.Context, tenantID string, employeeID string, date time.Time) ([]Exception, error)
	Create(ctx context.Context, newException Exception) (Exception, error)
	Approve(ctx context.Context, tenantID string, id string) error
	Delete(ctx context.Context, tenantID string, id string) error
}
