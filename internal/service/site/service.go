package site

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/site"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
)

type SiteServiceImpl struct {
	siteRepo site.SiteRepository
}

func NewSiteService(siteRepo site.SiteRepository) site.SiteService {
	return &SiteServiceImpl{siteRepo: siteRepo}
}

// ListSites implements site.SiteService.
func (s *SiteServiceImpl) ListSites(ctx context.Context, activeOnly bool) ([]site.SiteResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	sites, err := s.siteRepo.ListByTenantID(ctx, tenantID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	responses := make([]site.SiteResponse, 0, len(sites))
	for _, st := range sites {
		responses = append(responses, mapSiteToResponse(st))
	}

	return responses, nil
}

// GetSite implements site.SiteService.
func (s *SiteServiceImpl) GetSite(ctx context.Context, id string) (site.SiteResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return site.SiteResponse{}, err
	}

	st, err := s.siteRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return site.SiteResponse{}, err
	}

	return mapSiteToResponse(st), nil
}

// CreateSite implements site.SiteService.
func (s *SiteServiceImpl) CreateSite(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return site.SiteResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	exists, err := s.siteRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return site.SiteResponse{}, fmt.Errorf("failed to check site code: %w", err)
	}
	if exists {
		return site.SiteResponse{}, site.ErrSiteCodeExists
	}

	created, err := s.siteRepo.Create(ctx, site.Site{
		TenantID:     tenantID,
		Code:         req.Code,
		Name:         req.Name,
		Address:      req.Address,
		ContactInfo:  req.ContactInfo,
		OpeningHours: req.OpeningHours,
		ManagerID:    req.ManagerID,
		Capacity:     req.Capacity,
		Active:       true,
	})
	if err != nil {
		return site.SiteResponse{}, fmt.Errorf("failed to create site: %w", err)
	}

	slog.Info("site created", "site_id", created.ID, "code", created.Code)

	return mapSiteToResponse(created), nil
}

// UpdateSite implements site.SiteService.
func (s *SiteServiceImpl) UpdateSite(ctx context.Context, id string, req site.UpdateSiteRequest) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return err
	}

	return s.siteRepo.Update(ctx, tenantID, id, req)
}

// DeactivateSite implements site.SiteService.
func (s *SiteServiceImpl) DeactivateSite(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	return s.siteRepo.SetActive(ctx, tenantID, id, false)
}

// ActivateSite implements site.SiteService.
func (s *SiteServiceImpl) ActivateSite(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	return s.siteRepo.SetActive(ctx, tenantID, id, true)
}

func mapSiteToResponse(st site.Site) site.SiteResponse {
	return site.SiteResponse{
		ID:           st.ID,
		Code:         st.Code,
		Name:         st.Name,
		Address:      st.Address,
		ContactInfo:  st.ContactInfo,
		OpeningHours: st.OpeningHours,
		ManagerID:    st.ManagerID,
		Capacity:     st.Capacity,
		Active:       st.Active,
		CreatedAt:    st.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    st.UpdatedAt.Format(time.RFC3339),
	}
}
