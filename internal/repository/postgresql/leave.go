package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/leave"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	client *database.Client
}

func NewLeaveRepository(client *database.Client) leave.LeaveRepository {
	return &leaveRepositoryImpl{client: client}
}

const leaveColumns = `id, tenant_id, employee_id, leave_type, start_date, end_date, days_count,
		status, reason, approver_id, processed_at, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.EmployeeLeave, error) {
	var l leave.EmployeeLeave
	err := row.Scan(
		&l.ID, &l.TenantID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.DaysCount,
		&l.Status, &l.Reason, &l.ApproverID, &l.ProcessedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (leave.EmployeeLeave, error) {
	q := GetQuerier(ctx, r.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employee_leaves
		WHERE id = $1 AND tenant_id = $2
	`, leaveColumns)

	found, err := scanLeave(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.EmployeeLeave{}, leave.ErrLeaveNotFound
		}
		return leave.EmployeeLeave{}, fmt.Errorf("failed to get leave: %w", err)
	}

	return found, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, tenantID string, filter leave.LeaveFilter) ([]leave.EmployeeLeave, error) {
	q := GetQuerier(ctx, r.client)

	conditions := []string{"tenant_id = $1"}
	args := []interface{}{tenantID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM start_date) = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM employee_leaves
		WHERE %s
		ORDER BY start_date DESC
	`, leaveColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// ListByEmployeeAndYear implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployeeAndYear(ctx context.Context, tenantID string, employeeID string, year int) ([]leave.EmployeeLeave, error) {
	q := GetQuerier(ctx, r.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employee_leaves
		WHERE employee_id = $1 AND tenant_id = $2 AND EXTRACT(YEAR FROM start_date) = $3
		ORDER BY start_date ASC
	`, leaveColumns)

	rows, err := q.Query(ctx, query, employeeID, tenantID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func collectLeaves(rows pgx.Rows) ([]leave.EmployeeLeave, error) {
	var leaves []leave.EmployeeLeave
	for rows.Next() {
		var l leave.EmployeeLeave
		err := rows.Scan(
			&l.ID, &l.TenantID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.DaysCount,
			&l.Status, &l.Reason, &l.ApproverID, &l.ProcessedAt, &l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}

// HasOverlapping implements leave.LeaveRepository. Only pending and
// approved leaves block a new request.
func (r *leaveRepositoryImpl) HasOverlapping(ctx context.Context, tenantID string, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.client)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM employee_leaves
			WHERE employee_id = $1 AND tenant_id = $2
			  AND status IN ($3, $4)
			  AND start_date <= $5 AND end_date >= $6
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, tenantID, leave.StatusPending, leave.StatusApproved, end, start).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return exists, nil
}

// ApprovedOnDate implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ApprovedOnDate(ctx context.Context, tenantID string, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.client)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM employee_leaves
			WHERE employee_id = $1 AND tenant_id = $2
			  AND status = $3
			  AND start_date <= $4 AND end_date >= $4
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, tenantID, leave.StatusApproved, date).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return exists, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.EmployeeLeave) (leave.EmployeeLeave, error) {
	q := GetQuerier(ctx, r.client)

	query := fmt.Sprintf(`
		INSERT INTO employee_leaves (
			tenant_id, employee_id, leave_type, start_date, end_date, days_count, status, reason
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING %s
	`, leaveColumns)

	created, err := scanLeave(q.QueryRow(ctx, query,
		newLeave.TenantID, newLeave.EmployeeID, newLeave.LeaveType, newLeave.StartDate,
		newLeave.EndDate, newLeave.DaysCount, newLeave.Status, newLeave.Reason,
	))
	if err != nil {
		return leave.EmployeeLeave{}, err
	}
	return created, nil
}

// SetStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) SetStatus(ctx context.Context, tenantID string, id string, status leave.Status, approverID *string) error {
	q := GetQuerier(ctx, r.client)

	query := `
		UPDATE employee_leaves
		SET status = $1, approver_id = $2, processed_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND tenant_id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, approverID, id, tenantID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to set leave status: %w", err)
	}

	return nil
}
