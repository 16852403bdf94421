package planning

import "context"

type GenerationRepository interface {
	GetByID(ctx context.Context, tenantID string, id string) (Generation, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]Generation, error)
	Create(ctx context.Context, newGeneration Generation) (Generation, error)
	SetStatus(ctx context.Context, tenantID string, id string, status Status, results *Results) error
}
