package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/shift"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type assignmentRepositoryImpl struct {
	client *database.Client
}

func NewAssignmentRepository(client *database.Client) shift.AssignmentRepository {
	return &assignmentRepositoryImpl{client: client}
}

const assignmentColumns = `id, tenant_id, shift_id, employee_id, status, role, score, created_at, updated_at`

func scanAssignment(row pgx.Row) (shift.Assignment, error) {
	var a shift.Assignment
	err := row.Scan(
		&a.ID, &a.TenantID, &a.ShiftID, &a.EmployeeID, &a.Status,
		&a.Role, &a.Score, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// GetByID implements shift.AssignmentRepository.
func (a *assignmentRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (shift.Assignment, error) {
	q := GetQuerier(ctx, a.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM shift_assignments
		WHERE id = $1 AND tenant_id = $2
	`, assignmentColumns)

	found, err := scanAssignment(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Assignment{}, shift.ErrAssignmentNotFound
		}
		return shift.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return found, nil
}

// GetByShiftAndEmployee implements shift.AssignmentRepository.
func (a *assignmentRepositoryImpl) GetByShiftAndEmployee(ctx context.Context, tenantID string, shiftID, employeeID string) (shift.Assignment, error) {
	q := GetQuerier(ctx, a.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM shift_assignments
		WHERE shift_id = $1 AND employee_id = $2 AND tenant_id = $3
	`, assignmentColumns)

	found, err := scanAssignment(q.QueryRow(ctx, query, shiftID, employeeID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Assignment{}, shift.ErrAssignmentNotFound
		}
		return shift.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return found, nil
}

// ListByShiftID implements shift.AssignmentRepository.
func (a *assignmentRepositoryImpl) ListByShiftID(ctx context.Context, tenantID string, shiftID string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, a.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM shift_assignments
		WHERE shift_id = $1 AND tenant_id = $2
		ORDER BY created_at ASC
	`, assignmentColumns)

	rows, err := q.Query(ctx, query, shiftID, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssignments(rows)
}

// ListByEmployeeAndDateRange implements shift.AssignmentRepository.
func (a *assignmentRepositoryImpl) ListByEmployeeAndDateRange(ctx context.Context, tenantID string, employeeID string, dateFrom, dateTo string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, a.client)

	query := `
		SELECT sa.id, sa.tenant_id, sa.shift_id, sa.employee_id, sa.status, sa.role, sa.score, sa.created_at, sa.updated_at
		FROM shift_assignments sa
		JOIN shifts s ON s.id = sa.shift_id AND s.tenant_id = sa.tenant_id
		WHERE sa.employee_id = $1 AND sa.tenant_id = $2 AND s.date >= $3 AND s.date <= $4
		ORDER BY s.date ASC, s.start_time ASC
	`

	rows, err := q.Query(ctx, query, employeeID, tenantID, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func collectAssignments(rows pgx.Rows) ([]shift.Assignment, error) {
	var assignments []shift.Assignment
	for rows.Next() {
		var asg shift.Assignment
		err := rows.Scan(
			&asg.ID, &asg.TenantID, &asg.ShiftID, &asg.EmployeeID, &asg.Status,
			&asg.Role, &asg.Score, &asg.CreatedAt, &asg.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, asg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// Create implements shift.AssignmentRepository.
func (a *assignmentRepositoryImpl) Create(ctx context.Context, newAssignment shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, a.client)

	query := fmt.Sprintf(`
		INSERT INTO shift_assignments (
			tenant_id, shift_id, employee_id, status, role, score
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING %s
	`, assignmentColumns)

	created, err := scanAssignment(q.QueryRow(ctx, query,
		newAssignment.TenantID, newAssignment.ShiftID, newAssignment.EmployeeID,
		newAssignment.Status, newAssignment.Role, newAssignment.Score,
	))
	if err != nil {
		return shift.Assignment{}, err
	}
	return created, nil
}

// SetStatus implements shift.AssignmentRepository.
func (a *assignmentRepositoryImpl) SetStatus(ctx context.Context, tenantID string, id string, status shift.AssignmentStatus) error {
	q := GetQuerier(ctx, a.client)

	query := `
		UPDATE shift_assignments
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, id, tenantID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to set assignment status: %w", err)
	}

	return nil
}

// SetScore implements shift.AssignmentRepository.
func (a *assignmentRepositoryImpl) SetScore(ctx context.Context, tenantID string, id string, score float64) error {
	q := GetQuerier(ctx, a.client)

	query := `
		UPDATE shift_assignments
		SET score = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, score, id, tenantID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to set assignment score: %w", err)
	}

	return nil
}
