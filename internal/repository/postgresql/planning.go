package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/planning"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type generationRepositoryImpl struct {
	client *database.Client
}

func NewGenerationRepository(client *database.Client) planning.GenerationRepository {
	return &generationRepositoryImpl{client: client}
}

const generationColumns = `id, tenant_id, period_start, period_end, site_ids, status, results, created_at, updated_at`

func scanGeneration(row pgx.Row) (planning.Generation, error) {
	var g planning.Generation
	err := row.Scan(
		&g.ID, &g.TenantID, &g.PeriodStart, &g.PeriodEnd, &g.SiteIDs,
		&g.Status, &g.Results, &g.CreatedAt, &g.UpdatedAt,
	)
	return g, err
}

// GetByID implements planning.GenerationRepository.
func (g *generationRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (planning.Generation, error) {
	q := GetQuerier(ctx, g.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM planning_generations
		WHERE id = $1 AND tenant_id = $2
	`, generationColumns)

	found, err := scanGeneration(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return planning.Generation{}, planning.ErrGenerationNotFound
		}
		return planning.Generation{}, fmt.Errorf("failed to get planning generation: %w", err)
	}

	return found, nil
}

// ListByTenantID implements planning.GenerationRepository.
func (g *generationRepositoryImpl) ListByTenantID(ctx context.Context, tenantID string) ([]planning.Generation, error) {
	q := GetQuerier(ctx, g.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM planning_generations
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`, generationColumns)

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var generations []planning.Generation
	for rows.Next() {
		var gen planning.Generation
		err := rows.Scan(
			&gen.ID, &gen.TenantID, &gen.PeriodStart, &gen.PeriodEnd, &gen.SiteIDs,
			&gen.Status, &gen.Results, &gen.CreatedAt, &gen.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan planning generation: %w", err)
		}
		generations = append(generations, gen)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return generations, nil
}

// Create implements planning.GenerationRepository.
func (g *generationRepositoryImpl) Create(ctx context.Context, newGeneration planning.Generation) (planning.Generation, error) {
	q := GetQuerier(ctx, g.client)

	query := fmt.Sprintf(`
		INSERT INTO planning_generations (
			tenant_id, period_start, period_end, site_ids, status
		) VALUES (
			$1, $2, $3, $4, $5
		)
		RETURNING %s
	`, generationColumns)

	created, err := scanGeneration(q.QueryRow(ctx, query,
		newGeneration.TenantID, newGeneration.PeriodStart, newGeneration.PeriodEnd,
		newGeneration.SiteIDs, newGeneration.Status,
	))
	if err != nil {
		return planning.Generation{}, err
	}
	return created, nil
}

// SetStatus implements planning.GenerationRepository.
func (g *generationRepositoryImpl) SetStatus(ctx context.Context, tenantID string, id string, status planning.Status, results *planning.Results) error {
	q := GetQuerier(ctx, g.client)

	query := `
		UPDATE planning_generations
		SET status = $1, results = $2, updated_at = NOW()
		WHERE id = $3 AND tenant_id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, results, id, tenantID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return planning.ErrGenerationNotFound
		}
		return fmt.Errorf("failed to set planning generation status: %w", err)
	}

	return nil
}
