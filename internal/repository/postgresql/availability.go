package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/availability"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type patternRepositoryImpl struct {
	client *database.Client
}

func NewPatternRepository(client *database.Client) availability.PatternRepository {
	return &patternRepositoryImpl{client: client}
}

const patternColumns = `id, tenant_id, employee_id, pattern_type, time_slots, confidence_level,
		valid_from, valid_until, active, created_at, updated_at`

func scanPattern(row pgx.Row) (availability.Pattern, error) {
	var p availability.Pattern
	err := row.Scan(
		&p.ID, &p.TenantID, &p.EmployeeID, &p.PatternType, &p.TimeSlots, &p.ConfidenceLevel,
		&p.ValidFrom, &p.ValidUntil, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// GetByID implements availability.PatternRepository.
func (p *patternRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (availability.Pattern, error) {
	q := GetQuerier(ctx, p.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM availability_patterns
		WHERE id = $1 AND tenant_id = $2
	`, patternColumns)

	found, err := scanPattern(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return availability.Pattern{}, availability.ErrPatternNotFound
		}
		return availability.Pattern{}, fmt.Errorf("failed to get availability pattern: %w", err)
	}

	return found, nil
}

// ListByEmployeeID implements availability.PatternRepository.
func (p *patternRepositoryImpl) ListByEmployeeID(ctx context.Context, tenantID string, employeeID string, activeOnly bool) ([]availability.Pattern, error) {
	q := GetQuerier(ctx, p.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM availability_patterns
		WHERE employee_id = $1 AND tenant_id = $2 AND ($3 = false OR active = true)
		ORDER BY valid_from DESC
	`, patternColumns)

	rows, err := q.Query(ctx, query, employeeID, tenantID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patterns []availability.Pattern
	for rows.Next() {
		var pat availability.Pattern
		err := rows.Scan(
			&pat.ID, &pat.TenantID, &pat.EmployeeID, &pat.PatternType, &pat.TimeSlots, &pat.ConfidenceLevel,
			&pat.ValidFrom, &pat.ValidUntil, &pat.Active, &pat.CreatedAt, &pat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability pattern: %w", err)
		}
		patterns = append(patterns, pat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return patterns, nil
}

// Create implements availability.PatternRepository.
func (p *patternRepositoryImpl) Create(ctx context.Context, newPattern availability.Pattern) (availability.Pattern, error) {
	q := GetQuerier(ctx, p.client)

	query := fmt.Sprintf(`
		INSERT INTO availability_patterns (
			tenant_id, employee_id, pattern_type, time_slots, confidence_level,
			valid_from, valid_until, active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING %s
	`, patternColumns)

	created, err := scanPattern(q.QueryRow(ctx, query,
		newPattern.TenantID, newPattern.EmployeeID, newPattern.PatternType, newPattern.TimeSlots,
		newPattern.ConfidenceLevel, newPattern.ValidFrom, newPattern.ValidUntil, newPattern.Active,
	))
	if err != nil {
		return availability.Pattern{}, err
	}
	return created, nil
}

// Update implements availability.PatternRepository.
func (p *patternRepositoryImpl) Update(ctx context.Context, tenantID string, id string, req availability.UpdatePatternRequest) error {
	q := GetQuerier(ctx, p.client)

	updates := make(map[string]interface{})

	if req.PatternType != nil && *req.PatternType != "" {
		updates["pattern_type"] = *req.PatternType
	}
	if req.TimeSlots != nil {
		updates["time_slots"] = availability.TimeSlots(*req.TimeSlots)
	}
	if req.ConfidenceLevel != nil {
		updates["confidence_level"] = *req.ConfidenceLevel
	}
	if req.ValidFrom != nil && *req.ValidFrom != "" {
		updates["valid_from"] = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		if *req.ValidUntil == "" {
			updates["valid_until"] = nil
		} else {
			updates["valid_until"] = *req.ValidUntil
		}
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

	sql := fmt.Sprintf("UPDATE availability_patterns SET %s WHERE id = $%d AND tenant_id = $%d RETURNING id", strings.Join(setClauses, ", "), i, i+1)
	args = append(args, id, tenantID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return availability.ErrPatternNotFound
		}
		return fmt.Errorf("failed to update availability pattern with id %s: %w", id, err)
	}
	return nil
}

// DeactivateExpired implements availability.PatternRepository.
func (p *patternRepositoryImpl) DeactivateExpired(ctx context.Context, asOf time.Time) (int64, error) {
	q := GetQuerier(ctx, p.client)

	query := `
		UPDATE availability_patterns
		SET active = false, updated_at = NOW()
		WHERE active = true AND valid_until IS NOT NULL AND valid_until < $1
	`

	tag, err := q.Exec(ctx, query, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired patterns: %w", err)
	}

	return tag.RowsAffected(), nil
}

type exceptionRepositoryImpl struct {
	client *database.Client
}

func NewExceptionRepository(client *database.Client) availability.ExceptionRepository {
	return &exceptionRepositoryImpl{client: client}
}

const exceptionColumns = `id, tenant_id, employee_id, date, type, start_time, end_time, reason, approved, created_at, updated_at`

func scanException(row pgx.Row) (availability.Exception, error) {
	var e availability.Exception
	err := row.Scan(
		&e.ID, &e.TenantID, &e.EmployeeID, &e.Date, &e.Type, &e.StartTime,
		&e.EndTime, &e.Reason, &e.Approved, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetByID implements availability.ExceptionRepository.
func (e *exceptionRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (availability.Exception, error) {
	q := GetQuerier(ctx, e.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM availability_exceptions
		WHERE id = $1 AND tenant_id = $2
	`, exceptionColumns)

	found, err := scanException(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return availability.Exception{}, availability.ErrExceptionNotFound
		}
		return availability.Exception{}, fmt.Errorf("failed to get availability exception: %w", err)
	}

	return found, nil
}

// ListByEmployeeAndDate implements availability.ExceptionRepository.
func (e *exceptionRepositoryImpl) ListByEmployeeAndDate(ctx context.Context, tenantID string, employeeID string, date time.Time) ([]availability.Exception, error) {
	q := GetQuerier(ctx, e.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM availability_exceptions
		WHERE employee_id = $1 AND tenant_id = $2 AND date = $3
		ORDER BY created_at ASC
	`, exceptionColumns)

	rows, err := q.Query(ctx, query, employeeID, tenantID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exceptions []availability.Exception
	for rows.Next() {
		var exc availability.Exception
		err := rows.Scan(
			&exc.ID, &exc.TenantID, &exc.EmployeeID, &exc.Date, &exc.Type, &exc.StartTime,
			&exc.EndTime, &exc.Reason, &exc.Approved, &exc.CreatedAt, &exc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan availability exception: %w", err)
		}
		exceptions = append(exceptions, exc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return exceptions, nil
}

// Create implements availability.ExceptionRepository.
func (e *exceptionRepositoryImpl) Create(ctx context.Context, newException availability.Exception) (availability.Exception, error) {
	q := GetQuerier(ctx, e.client)

	query := fmt.Sprintf(`
		INSERT INTO availability_exceptions (
			tenant_id, employee_id, date, type, start_time, end_time, reason, approved
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING %s
	`, exceptionColumns)

	created, err := scanException(q.QueryRow(ctx, query,
		newException.TenantID, newException.EmployeeID, newException.Date, newException.Type,
		newException.StartTime, newException.EndTime, newException.Reason, newException.Approved,
	))
	if err != nil {
		return availability.Exception{}, err
	}
	return created, nil
}

// Approve implements availability.ExceptionRepository.
func (e *exceptionRepositoryImpl) Approve(ctx context.Context, tenantID string, id string) error {
	q := GetQuerier(ctx, e.client)

	query := `
		UPDATE availability_exceptions
		SET approved = true, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, tenantID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return availability.ErrExceptionNotFound
		}
		return fmt.Errorf("failed to approve availability exception: %w", err)
	}

	return nil
}

// Delete implements availability.ExceptionRepository.
func (e *exceptionRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	q := GetQuerier(ctx, e.client)

	query := `DELETE FROM availability_exceptions WHERE id = $1 AND tenant_id = $2`

	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete availability exception: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return availability.ErrExceptionNotFound
	}

	return nil
}
