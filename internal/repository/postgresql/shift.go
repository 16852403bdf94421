package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/shift"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	client *database.Client
}

func NewShiftRepository(client *database.Client) shift.ShiftRepository {
	return &shiftRepositoryImpl{client: client}
}

const shiftColumns = `id, tenant_id, site_id, date, start_time, end_time, requirements, status, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var sh shift.Shift
	err := row.Scan(
		&sh.ID, &sh.TenantID, &sh.SiteID, &sh.Date, &sh.StartTime, &sh.EndTime,
		&sh.Requirements, &sh.Status, &sh.CreatedAt, &sh.UpdatedAt,
	)
	return sh, err
}

// GetByID implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, s.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM shifts
		WHERE id = $1 AND tenant_id = $2
	`, shiftColumns)

	found, err := scanShift(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return found, nil
}

// List implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) List(ctx context.Context, tenantID string, filter shift.ShiftFilter) ([]shift.Shift, error) {
	q := GetQuerier(ctx, s.client)

	conditions := []string{"tenant_id = $1"}
	args := []interface{}{tenantID}
	argIdx := 2

	if filter.SiteID != nil && *filter.SiteID != "" {
		conditions = append(conditions, fmt.Sprintf("site_id = $%d", argIdx))
		args = append(args, *filter.SiteID)
		argIdx++
	}
	if filter.DateFrom != nil && *filter.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil && *filter.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM shifts
		WHERE %s
		ORDER BY date ASC, start_time ASC
	`, shiftColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var sh shift.Shift
		err := rows.Scan(
			&sh.ID, &sh.TenantID, &sh.SiteID, &sh.Date, &sh.StartTime, &sh.EndTime,
			&sh.Requirements, &sh.Status, &sh.CreatedAt, &sh.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// Create implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, s.client)

	query := fmt.Sprintf(`
		INSERT INTO shifts (
			tenant_id, site_id, date, start_time, end_time, requirements, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING %s
	`, shiftColumns)

	created, err := scanShift(q.QueryRow(ctx, query,
		newShift.TenantID, newShift.SiteID, newShift.Date, newShift.StartTime,
		newShift.EndTime, newShift.Requirements, newShift.Status,
	))
	if err != nil {
		return shift.Shift{}, err
	}
	return created, nil
}

// Update implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Update(ctx context.Context, tenantID string, id string, req shift.UpdateShiftRequest) error {
	q := GetQuerier(ctx, s.client)

	updates := make(map[string]interface{})

	if req.Date != nil && *req.Date != "" {
		updates["date"] = *req.Date
	}
	if req.StartTime != nil && *req.StartTime != "" {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil && *req.EndTime != "" {
		updates["end_time"] = *req.EndTime
	}
	if req.Requirements != nil {
		updates["requirements"] = *req.Requirements
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

	sql := fmt.Sprintf("UPDATE shifts SET %s WHERE id = $%d AND tenant_id = $%d RETURNING id", strings.Join(setClauses, ", "), i, i+1)
	args = append(args, id, tenantID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift with id %s: %w", id, err)
	}
	return nil
}

// SetStatus implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) SetStatus(ctx context.Context, tenantID string, id string, status shift.Status) error {
	q := GetQuerier(ctx, s.client)

	query := `
		UPDATE shifts
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, id, tenantID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to set shift status: %w", err)
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	q := GetQuerier(ctx, s.client)

	query := `DELETE FROM shifts WHERE id = $1 AND tenant_id = $2`

	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// CompleteElapsed implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) CompleteElapsed(ctx context.Context, asOf time.Time) (int64, error) {
	q := GetQuerier(ctx, s.client)

	query := `
		UPDATE shifts
		SET status = $1, updated_at = NOW()
		WHERE status IN ($2, $3) AND date < $4
	`

	tag, err := q.Exec(ctx, query, shift.StatusCompleted, shift.StatusPublished, shift.StatusClosed, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to complete elapsed shifts: %w", err)
	}

	return tag.RowsAffected(), nil
}
