package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/employee"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	client *database.Client
}

func NewEmployeeRepository(client *database.Client) employee.EmployeeRepository {
	return &employeeRepositoryImpl{client: client}
}

const employeeColumns = `id, tenant_id, employee_number, first_name, last_name, email, phone_number,
		birth_date, status_code, contract_type, hourly_rate, weekly_hours, monthly_hours, color,
		lifecycle, languages, experience_level, hire_date, annual_leave_days, sick_leave_days,
		current_year, created_at, updated_at, archived_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.TenantID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName,
		&emp.Email, &emp.PhoneNumber, &emp.BirthDate, &emp.StatusCode, &emp.ContractType,
		&emp.HourlyRate, &emp.WeeklyHours, &emp.MonthlyHours, &emp.Color, &emp.Lifecycle,
		&emp.Languages, &emp.ExperienceLevel, &emp.HireDate, &emp.AnnualLeaveDays,
		&emp.SickLeaveDays, &emp.CurrentYear, &emp.CreatedAt, &emp.UpdatedAt, &emp.ArchivedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE id = $1 AND tenant_id = $2
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByIDWithStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByIDWithStatus(ctx context.Context, tenantID string, id string) (employee.EmployeeWithStatus, error) {
	q := GetQuerier(ctx, e.client)

	query := `
		SELECT e.id, e.tenant_id, e.employee_number, e.first_name, e.last_name, e.email, e.phone_number,
			e.birth_date, e.status_code, e.contract_type, e.hourly_rate, e.weekly_hours, e.monthly_hours,
			e.color, e.lifecycle, e.languages, e.experience_level, e.hire_date, e.annual_leave_days,
			e.sick_leave_days, e.current_year, e.created_at, e.updated_at, e.archived_at,
			s.label AS status_label,
			s.max_weekly_hours, s.max_monthly_hours, s.max_yearly_hours,
			COALESCE(s.is_student, false) AS is_student
		FROM employees e
		LEFT JOIN employee_statuses s ON e.status_code = s.code AND e.tenant_id = s.tenant_id
		WHERE e.id = $1 AND e.tenant_id = $2
	`

	var emp employee.EmployeeWithStatus
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&emp.ID, &emp.TenantID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName,
		&emp.Email, &emp.PhoneNumber, &emp.BirthDate, &emp.StatusCode, &emp.ContractType,
		&emp.HourlyRate, &emp.WeeklyHours, &emp.MonthlyHours, &emp.Color, &emp.Lifecycle,
		&emp.Languages, &emp.ExperienceLevel, &emp.HireDate, &emp.AnnualLeaveDays,
		&emp.SickLeaveDays, &emp.CurrentYear, &emp.CreatedAt, &emp.UpdatedAt, &emp.ArchivedAt,
		&emp.StatusLabel, &emp.MaxWeeklyHours, &emp.MaxMonthlyHours, &emp.MaxYearlyHours,
		&emp.IsStudent,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeWithStatus{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeWithStatus{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByEmployeeNumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeNumber(ctx context.Context, tenantID string, employeeNumber string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE employee_number = $1 AND tenant_id = $2
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeNumber, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by number: %w", err)
	}

	return emp, nil
}

// GetActiveByPhoneNumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByPhoneNumber(ctx context.Context, phoneNumber string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.client)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE phone_number = $1 AND lifecycle = $2
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, phoneNumber, employee.LifecycleActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by phone number: %w", err)
	}

	return emp, nil
}

// ExistsByEmployeeNumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmployeeNumber(ctx context.Context, tenantID string, employeeNumber string) (bool, error) {
	q := GetQuerier(ctx, e.client)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_number = $1 AND tenant_id = $2)`

	var exists bool
	err := q.QueryRow(ctx, query, employeeNumber, tenantID).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.client)

	query := fmt.Sprintf(`
		INSERT INTO employees (
			tenant_id, employee_number, first_name, last_name, email, phone_number,
			birth_date, status_code, contract_type, hourly_rate, weekly_hours, monthly_hours,
			color, lifecycle, languages, experience_level, hire_date, annual_leave_days,
			sick_leave_days, current_year
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18,
			$19, $20
		)
		RETURNING %s
	`, employeeColumns)

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.TenantID, newEmployee.EmployeeNumber, newEmployee.FirstName, newEmployee.LastName,
		newEmployee.Email, newEmployee.PhoneNumber, newEmployee.BirthDate, newEmployee.StatusCode,
		newEmployee.ContractType, newEmployee.HourlyRate, newEmployee.WeeklyHours, newEmployee.MonthlyHours,
		newEmployee.Color, newEmployee.Lifecycle, newEmployee.Languages, newEmployee.ExperienceLevel,
		newEmployee.HireDate, newEmployee.AnnualLeaveDays, newEmployee.SickLeaveDays, newEmployee.CurrentYear,
	))
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, tenantID string, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.client)

	updates := make(map[string]interface{})

	if req.EmployeeNumber != nil && *req.EmployeeNumber != "" {
		updates["employee_number"] = *req.EmployeeNumber
	}
	if req.FirstName != nil && *req.FirstName != "" {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil && *req.LastName != "" {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		if *req.Email == "" {
			updates["email"] = nil
		} else {
			updates["email"] = *req.Email
		}
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			updates["birth_date"] = nil
		} else {
			parsedBirthDate, _ := time.Parse("2006-01-02", *req.BirthDate)
			updates["birth_date"] = parsedBirthDate
		}
	}
	if req.StatusCode != nil && *req.StatusCode != "" {
		updates["status_code"] = *req.StatusCode
	}
	if req.ContractType != nil && *req.ContractType != "" {
		updates["contract_type"] = *req.ContractType
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate == "" {
			updates["hourly_rate"] = nil
		} else {
			parsedRate, err := decimal.NewFromString(*req.HourlyRate)
			if err != nil {
				return employee.ErrInvalidHourlyRate
			}
			updates["hourly_rate"] = parsedRate
		}
	}
	if req.WeeklyHours != nil {
		updates["weekly_hours"] = *req.WeeklyHours
	}
	if req.MonthlyHours != nil {
		updates["monthly_hours"] = *req.MonthlyHours
	}
	if req.Color != nil && *req.Color != "" {
		updates["color"] = *req.Color
	}
	if req.Languages != nil {
		updates["languages"] = *req.Languages
	}
	if req.ExperienceLevel != nil && *req.ExperienceLevel != "" {
		updates["experience_level"] = *req.ExperienceLevel
	}
	if req.HireDate != nil && *req.HireDate != "" {
		parsedHireDate, _ := time.Parse("2006-01-02", *req.HireDate)
		updates["hire_date"] = parsedHireDate
	}
	if req.AnnualLeaveDays != nil {
		updates["annual_leave_days"] = *req.AnnualLeaveDays
	}
	if req.SickLeaveDays != nil {
		updates["sick_leave_days"] = *req.SickLeaveDays
	}

	if len(updates) == 0 {
		return nil // No updates provided
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

	sql := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d AND tenant_id = $%d RETURNING id", strings.Join(setClauses, ", "), i, i+1)
	args = append(args, id, tenantID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, tenantID string, filter employee.EmployeeFilter) ([]employee.EmployeeWithStatus, int64, error) {
	q := GetQuerier(ctx, e.client)

	conditions := []string{"e.tenant_id = $1"}
	args := []interface{}{tenantID}
	argIdx := 2

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_number ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.StatusCode != nil && *filter.StatusCode != "" {
		conditions = append(conditions, fmt.Sprintf("e.status_code = $%d", argIdx))
		args = append(args, *filter.StatusCode)
		argIdx++
	}
	if filter.ContractType != nil && *filter.ContractType != "" {
		conditions = append(conditions, fmt.Sprintf("e.contract_type = $%d", argIdx))
		args = append(args, *filter.ContractType)
		argIdx++
	}
	if filter.Lifecycle != nil && *filter.Lifecycle != "" {
		conditions = append(conditions, fmt.Sprintf("e.lifecycle = $%d", argIdx))
		args = append(args, *filter.Lifecycle)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count query
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees e WHERE %s", whereClause)
	var total int64
	err := q.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		// Fallback mode yields no rows for single-row reads; treat as empty.
		if errors.Is(err, pgx.ErrNoRows) {
			return []employee.EmployeeWithStatus{}, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	// Validate sort column
	validSortColumns := map[string]string{
		"last_name":       "e.last_name",
		"first_name":      "e.first_name",
		"employee_number": "e.employee_number",
		"hire_date":       "e.hire_date",
		"created_at":      "e.created_at",
	}
	sortColumn, ok := validSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "e.created_at"
	}

	sortOrder := "DESC"
	if strings.ToUpper(filter.SortOrder) == "ASC" {
		sortOrder = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT e.id, e.tenant_id, e.employee_number, e.first_name, e.last_name, e.email, e.phone_number,
			e.birth_date, e.status_code, e.contract_type, e.hourly_rate, e.weekly_hours, e.monthly_hours,
			e.color, e.lifecycle, e.languages, e.experience_level, e.hire_date, e.annual_leave_days,
			e.sick_leave_days, e.current_year, e.created_at, e.updated_at, e.archived_at,
			s.label AS status_label,
			s.max_weekly_hours, s.max_monthly_hours, s.max_yearly_hours,
			COALESCE(s.is_student, false) AS is_student
		FROM employees e
		LEFT JOIN employee_statuses s ON e.status_code = s.code AND e.tenant_id = s.tenant_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees, err := scanEmployeesWithStatus(rows)
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// GetActiveByTenantID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByTenantID(ctx context.Context, tenantID string) ([]employee.EmployeeWithStatus, error) {
	q := GetQuerier(ctx, e.client)

	query := `
		SELECT e.id, e.tenant_id, e.employee_number, e.first_name, e.last_name, e.email, e.phone_number,
			e.birth_date, e.status_code, e.contract_type, e.hourly_rate, e.weekly_hours, e.monthly_hours,
			e.color, e.lifecycle, e.languages, e.experience_level, e.hire_date, e.annual_leave_days,
			e.sick_leave_days, e.current_year, e.created_at, e.updated_at, e.archived_at,
			s.label AS status_label,
			s.max_weekly_hours, s.max_monthly_hours, s.max_yearly_hours,
			COALESCE(s.is_student, false) AS is_student
		FROM employees e
		LEFT JOIN employee_statuses s ON e.status_code = s.code AND e.tenant_id = s.tenant_id
		WHERE e.tenant_id = $1 AND e.lifecycle = $2
		ORDER BY e.last_name ASC, e.first_name ASC
	`

	rows, err := q.Query(ctx, query, tenantID, employee.LifecycleActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployeesWithStatus(rows)
}

// SetLifecycle implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SetLifecycle(ctx context.Context, tenantID string, id string, lifecycle employee.Lifecycle) error {
	q := GetQuerier(ctx, e.client)

	query := `
		UPDATE employees
		SET lifecycle = $1,
			archived_at = CASE WHEN $1 = 'ARCHIVED' THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, lifecycle, id, tenantID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to set employee lifecycle: %w", err)
	}

	return nil
}

func scanEmployeesWithStatus(rows pgx.Rows) ([]employee.EmployeeWithStatus, error) {
	var employees []employee.EmployeeWithStatus
	for rows.Next() {
		var emp employee.EmployeeWithStatus
		err := rows.Scan(
			&emp.ID, &emp.TenantID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName,
			&emp.Email, &emp.PhoneNumber, &emp.BirthDate, &emp.StatusCode, &emp.ContractType,
			&emp.HourlyRate, &emp.WeeklyHours, &emp.MonthlyHours, &emp.Color, &emp.Lifecycle,
			&emp.Languages, &emp.ExperienceLevel, &emp.HireDate, &emp.AnnualLeaveDays,
			&emp.SickLeaveDays, &emp.CurrentYear, &emp.CreatedAt, &emp.UpdatedAt, &emp.ArchivedAt,
			&emp.StatusLabel, &emp.MaxWeeklyHours, &emp.MaxMonthlyHours, &emp.MaxYearlyHours,
			&emp.IsStudent,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
