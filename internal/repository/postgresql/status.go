package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/status"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type statusRepositoryImpl struct {
	client *database.Client
}

func NewStatusRepository(client *database.Client) status.StatusRepository {
	return &statusRepositoryImpl{client: client}
}

const statusColumns = `id, tenant_id, code, label, max_weekly_hours, max_monthly_hours, max_yearly_hours,
		is_student, color, created_at, updated_at`

func scanStatus(row pgx.Row) (status.EmployeeStatus, error) {
	var st status.EmployeeStatus
	err := row.Scan(
		&st.ID, &st.TenantID, &st.Code, &st.Label,
		&st.Limits.Weekly, &st.Limits.Monthly, &st.Limits.Yearly,
		&st.IsStudent, &st.Color, &st.CreatedAt, &st.UpdatedAt,
	)
	return st, err
}

// GetByCode implements status.StatusRepository.
func (s *statusRepositoryImpl) GetByCode(ctx context.Context, tenantID string, code string) (status.EmployeeStatus, error) {
	q := GetQuerier(ctx, s.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employee_statuses
		WHERE code = $1 AND tenant_id = $2
	`, statusColumns)

	st, err := scanStatus(q.QueryRow(ctx, query, code, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return status.EmployeeStatus{}, status.ErrStatusNotFound
		}
		return status.EmployeeStatus{}, fmt.Errorf("failed to get status: %w", err)
	}

	return st, nil
}

// ExistsByCode implements status.StatusRepository.
func (s *statusRepositoryImpl) ExistsByCode(ctx context.Context, tenantID string, code string) (bool, error) {
	q := GetQuerier(ctx, s.client)

	query := `SELECT EXISTS(SELECT 1 FROM employee_statuses WHERE code = $1 AND tenant_id = $2)`

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

// ListByTenantID implements status.StatusRepository.
func (s *statusRepositoryImpl) ListByTenantID(ctx context.Context, tenantID string) ([]status.EmployeeStatus, error) {
	q := GetQuerier(ctx, s.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employee_statuses
		WHERE tenant_id = $1
		ORDER BY code ASC
	`, statusColumns)

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []status.EmployeeStatus
	for rows.Next() {
		var st status.EmployeeStatus
		err := rows.Scan(
			&st.ID, &st.TenantID, &st.Code, &st.Label,
			&st.Limits.Weekly, &st.Limits.Monthly, &st.Limits.Yearly,
			&st.IsStudent, &st.Color, &st.CreatedAt, &st.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status: %w", err)
		}
		statuses = append(statuses, st)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}

// Create implements status.StatusRepository.
func (s *statusRepositoryImpl) Create(ctx context.Context, newStatus status.EmployeeStatus) (status.EmployeeStatus, error) {
	q := GetQuerier(ctx, s.client)

	query := fmt.Sprintf(`
		INSERT INTO employee_statuses (
			tenant_id, code, label, max_weekly_hours, max_monthly_hours, max_yearly_hours, is_student, color
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING %s
	`, statusColumns)

	created, err := scanStatus(q.QueryRow(ctx, query,
		newStatus.TenantID, newStatus.Code, newStatus.Label,
		newStatus.Limits.Weekly, newStatus.Limits.Monthly, newStatus.Limits.Yearly,
		newStatus.IsStudent, newStatus.Color,
	))
	if err != nil {
		return status.EmployeeStatus{}, err
	}
	return created, nil
}

// Update implements status.StatusRepository.
func (s *statusRepositoryImpl) Update(ctx context.Context, tenantID string, code string, req status.UpdateStatusRequest) error {
	q := GetQuerier(ctx, s.client)

	updates := make(map[string]interface{})

	if req.Label != nil && *req.Label != "" {
		updates["label"] = *req.Label
	}
	if req.Limits != nil {
		updates["max_weekly_hours"] = req.Limits.Weekly
		updates["max_monthly_hours"] = req.Limits.Monthly
		updates["max_yearly_hours"] = req.Limits.Yearly
	}
	if req.IsStudent != nil {
		updates["is_student"] = *req.IsStudent
	}
	if req.Color != nil {
		updates["color"] = *req.Color
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

	sql := fmt.Sprintf("UPDATE employee_statuses SET %s WHERE code = $%d AND tenant_id = $%d RETURNING id", strings.Join(setClauses, ", "), i, i+1)
	args = append(args, code, tenantID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return status.ErrStatusNotFound
		}
		return fmt.Errorf("failed to update status %s: %w", code, err)
	}
	return nil
}
