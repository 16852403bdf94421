package site

import "context"

type SiteService interface {
	ListSites(ctx context.Context, activeOnly bool) ([]SiteResponse, error)
	GetSite(ctx context.Context, id string) (SiteResponse, error)
	CreateSite(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	UpdateSite(ctx context.Context, id string, req UpdateSiteRequest) error
	DeactivateSite(ctx context.Context, id string) error
	ActivateSite(ctx context.Context, id string) error
}
