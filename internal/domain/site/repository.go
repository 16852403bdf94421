package site

import "context"

type SiteRepository interface {
	GetByID(ctx context.Context, tenantID string, id string) (Site, error)
	ExistsByCode(ctx context.Context, tenantID string, code string) (bool, error)
	ListByTenantID(ctx context.Context, tenantID string, activeOnly bool) ([]Site, error)
	Create(ctx context.Context, newSite Site) (Site, error)
	Update(ctx context.Context, tenantID string, id string, req UpdateSiteRequest) error
	SetActive(ctx context.Context, tenantID string, id string, active bool) error
}
