package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/site"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type siteRepositoryImpl struct {
	client *database.Client
}

func NewSiteRepository(client *database.Client) site.SiteRepository {
	return &siteRepositoryImpl{client: client}
}

const siteColumns = `id, tenant_id, code, name, address, contact_info, opening_hours, manager_id,
		capacity, active, created_at, updated_at`

func scanSite(row pgx.Row) (site.Site, error) {
	var st site.Site
	err := row.Scan(
		&st.ID, &st.TenantID, &st.Code, &st.Name, &st.Address, &st.ContactInfo,
		&st.OpeningHours, &st.ManagerID, &st.Capacity, &st.Active, &st.CreatedAt, &st.UpdatedAt,
	)
	return st, err
}

// GetByID implements site.SiteRepository.
func (s *siteRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (site.Site, error) {
	q := GetQuerier(ctx, s.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM sites
		WHERE id = $1 AND tenant_id = $2
	`, siteColumns)

	found, err := scanSite(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site: %w", err)
	}

	return found, nil
}

// ExistsByCode implements site.SiteRepository.
func (s *siteRepositoryImpl) ExistsByCode(ctx context.Context, tenantID string, code string) (bool, error) {
	q := GetQuerier(ctx, s.client)

	query := `SELECT EXISTS(SELECT 1 FROM sites WHERE code = $1 AND tenant_id = $2)`

	var exists bool
	err := q.QueryRow(ctx, query, code, tenantID).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return exists, nil
}

// ListByTenantID implements site.SiteRepository.
func (s *siteRepositoryImpl) ListByTenantID(ctx context.Context, tenantID string, activeOnly bool) ([]site.Site, error) {
	q := GetQuerier(ctx, s.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM sites
		WHERE tenant_id = $1 AND ($2 = false OR active = true)
		ORDER BY code ASC
	`, siteColumns)

	rows, err := q.Query(ctx, query, tenantID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		var st site.Site
		err := rows.Scan(
			&st.ID, &st.TenantID, &st.Code, &st.Name, &st.Address, &st.ContactInfo,
			&st.OpeningHours, &st.ManagerID, &st.Capacity, &st.Active, &st.CreatedAt, &st.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, st)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sites, nil
}

// Create implements site.SiteRepository.
func (s *siteRepositoryImpl) Create(ctx context.Context, newSite site.Site) (site.Site, error) {
	q := GetQuerier(ctx, s.client)

	query := fmt.Sprintf(`
		INSERT INTO sites (
			tenant_id, code, name, address, contact_info, opening_hours, manager_id, capacity, active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING %s
	`, siteColumns)

	created, err := scanSite(q.QueryRow(ctx, query,
		newSite.TenantID, newSite.Code, newSite.Name, newSite.Address, newSite.ContactInfo,
		newSite.OpeningHours, newSite.ManagerID, newSite.Capacity, newSite.Active,
	))
	if err != nil {
		return site.Site{}, err
	}
	return created, nil
}

// Update implements site.SiteRepository.
func (s *siteRepositoryImpl) Update(ctx context.Context, tenantID string, id string, req site.UpdateSiteRequest) error {
	q := GetQuerier(ctx, s.client)

	updates := make(map[string]interface{})

	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		if *req.Address == "" {
			updates["address"] = nil
		} else {
			updates["address"] = *req.Address
		}
	}
	if req.ContactInfo != nil {
		if *req.ContactInfo == "" {
			updates["contact_info"] = nil
		} else {
			updates["contact_info"] = *req.ContactInfo
		}
	}
	if req.OpeningHours != nil {
		updates["opening_hours"] = *req.OpeningHours
	}
	if req.ManagerID != nil {
		if *req.ManagerID == "" {
			updates["manager_id"] = nil
		} else {
			updates["manager_id"] = *req.ManagerID
		}
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := fmt.Sprintf("UPDATE sites SET %s WHERE id = $%d AND tenant_id = $%d RETURNING id", strings.Join(setClauses, ", "), i, i+1)
	args = append(args, id, tenantID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.ErrSiteNotFound
		}
		return fmt.Errorf("failed to update site with id %s: %w", id, err)
	}
	return nil
}

// SetActive implements site.SiteRepository.
func (s *siteRepositoryImpl) SetActive(ctx context.Context, tenantID string, id string, active bool) error {
	q := GetQuerier(ctx, s.client)

	query := `
		UPDATE sites
		SET active = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, active, id, tenantID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.ErrSiteNotFound
		}
		return fmt.Errorf("failed to set site active flag: %w", err)
	}

	return nil
}
