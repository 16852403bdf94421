package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/availability"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/employee"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/status"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo        employee.EmployeeRepository
	statusRepo          status.StatusRepository
	availabilityService availability.AvailabilityService
	examCalendar        employee.ExamCalendar
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	statusRepo status.StatusRepository,
	availabilityService availability.AvailabilityService,
	examCalendar employee.ExamCalendar,
) employee.EmployeeService {
	if examCalendar == nil {
		examCalendar = employee.NoExamCalendar{}
	}
	return &EmployeeServiceImpl{
		employeeRepo:        employeeRepo,
		statusRepo:          statusRepo,
		availabilityService: availabilityService,
		examCalendar:        examCalendar,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return responses, total, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByIDWithStatus(ctx, tenantID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// GetEmployeeCard implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeCard(ctx context.Context, id string) (employee.EmployeeCardResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return employee.EmployeeCardResponse{}, err
	}

	emp, err := s.employeeRepo.GetByIDWithStatus(ctx, tenantID, id)
	if err != nil {
		return employee.EmployeeCardResponse{}, err
	}

	return s.buildCard(ctx, emp), nil
}

// buildCard derives the presentation state for one employee card. A
// failed availability resolution only suppresses the warning badge; it
// never fails the card.
func (s *EmployeeServiceImpl) buildCard(ctx context.Context, emp employee.EmployeeWithStatus) employee.EmployeeCardResponse {
	now := time.Now()

	var maxMonthly float64
	if emp.MaxMonthlyHours != nil {
		maxMonthly = *emp.MaxMonthlyHours
	}
	progress := employee.HoursProgress(emp.MonthlyHours, maxMonthly)

	card := employee.EmployeeCardResponse{
		ID:            emp.ID,
		Initials:      employee.Initials(emp.FirstName, emp.LastName),
		FullName:      emp.FirstName + " " + emp.LastName,
		Color:         emp.Color,
		HoursLabel:    fmt.Sprintf("%gh / %gh", emp.MonthlyHours, maxMonthly),
		HoursProgress: progress,
		HoursTier:     string(employee.ProgressTier(progress)),
	}

	if badge, ok := employee.StudentStatus(emp.IsStudent, s.examCalendar, now); ok {
		badgeStr := string(badge)
		card.StudentBadge = &badgeStr
	}

	day, err := s.availabilityService.ResolveDay(ctx, emp.ID, now.Format("2006-01-02"))
	if err != nil {
		slog.Warn("failed to resolve availability for employee card", "employee_id", emp.ID, "error", err)
	} else {
		card.AvailabilityWarning = employee.AvailabilityBadge(day.Available)
	}

	return card
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmployeeNumber(ctx, tenantID, req.EmployeeNumber)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee number: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNumberExists
	}

	statusExists, err := s.statusRepo.ExistsByCode(ctx, tenantID, req.StatusCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check status code: %w", err)
	}
	if !statusExists {
		return employee.EmployeeResponse{}, employee.ErrUnknownStatusCode
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)
	if hireDate.After(time.Now()) {
		return employee.EmployeeResponse{}, employee.ErrFutureHireDate
	}

	newEmployee, err := buildEmployee(tenantID, req, hireDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee created", "employee_id", created.ID, "employee_number", created.EmployeeNumber)

	return mapEmployeeToResponse(employee.EmployeeWithStatus{Employee: created}), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.employeeRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if req.EmployeeNumber != nil && *req.EmployeeNumber != existing.EmployeeNumber {
		exists, err := s.employeeRepo.ExistsByEmployeeNumber(ctx, tenantID, *req.EmployeeNumber)
		if err != nil {
			return fmt.Errorf("failed to check employee number: %w", err)
		}
		if exists {
			return employee.ErrEmployeeNumberExists
		}
	}

	if req.StatusCode != nil && *req.StatusCode != existing.StatusCode {
		statusExists, err := s.statusRepo.ExistsByCode(ctx, tenantID, *req.StatusCode)
		if err != nil {
			return fmt.Errorf("failed to check status code: %w", err)
		}
		if !statusExists {
			return employee.ErrUnknownStatusCode
		}
	}

	return s.employeeRepo.Update(ctx, tenantID, id, req)
}

// ArchiveEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ArchiveEmployee(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.employeeRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.Lifecycle == employee.LifecycleArchived {
		return nil
	}

	if err := s.employeeRepo.SetLifecycle(ctx, tenantID, id, employee.LifecycleArchived); err != nil {
		return err
	}

	slog.Info("employee archived", "employee_id", id)
	return nil
}

// RestoreEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RestoreEmployee(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.employeeRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.Lifecycle == employee.LifecycleActive {
		return nil
	}

	if err := s.employeeRepo.SetLifecycle(ctx, tenantID, id, employee.LifecycleActive); err != nil {
		return err
	}

	slog.Info("employee restored", "employee_id", id)
	return nil
}

// GetRoster implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetRoster(ctx context.Context) ([]employee.EmployeeCardResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetActiveByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	cards := make([]employee.EmployeeCardResponse, 0, len(employees))
	for _, emp := range employees {
		cards = append(cards, s.buildCard(ctx, emp))
	}

	return cards, nil
}

func buildEmployee(tenantID string, req employee.CreateEmployeeRequest, hireDate time.Time) (employee.Employee, error) {
	emp := employee.Employee{
		TenantID:        tenantID,
		EmployeeNumber:  req.EmployeeNumber,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		StatusCode:      req.StatusCode,
		ContractType:    employee.ContractType(req.ContractType),
		WeeklyHours:     req.WeeklyHours,
		Color:           req.Color,
		Lifecycle:       employee.LifecycleActive,
		Languages:       req.Languages,
		ExperienceLevel: employee.ExperienceLevel(req.ExperienceLevel),
		HireDate:        hireDate,
		AnnualLeaveDays: req.AnnualLeaveDays,
		SickLeaveDays:   req.SickLeaveDays,
		CurrentYear:     time.Now().Year(),
	}

	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse birth date: %w", err)
		}
		emp.BirthDate = &birthDate
	}

	if req.HourlyRate != nil {
		rate, err := parseHourlyRate(*req.HourlyRate)
		if err != nil {
			return employee.Employee{}, err
		}
		emp.HourlyRate = rate
	}

	return emp, nil
}

func parseHourlyRate(s string) (*decimal.Decimal, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil || rate.IsNegative() {
		return nil, employee.ErrInvalidHourlyRate
	}
	return &rate, nil
}

func mapEmployeeToResponse(emp employee.EmployeeWithStatus) employee.EmployeeResponse {
	var birthDateStr *string
	if emp.BirthDate != nil {
		s := emp.BirthDate.Format("2006-01-02")
		birthDateStr = &s
	}

	var hourlyRateStr *string
	if emp.HourlyRate != nil {
		s := emp.HourlyRate.String()
		hourlyRateStr = &s
	}

	languages := emp.Languages
	if languages == nil {
		languages = []string{}
	}

	return employee.EmployeeResponse{
		ID:              emp.ID,
		EmployeeNumber:  emp.EmployeeNumber,
		FirstName:       emp.FirstName,
		LastName:        emp.LastName,
		Email:           emp.Email,
		PhoneNumber:     emp.PhoneNumber,
		BirthDate:       birthDateStr,
		StatusCode:      emp.StatusCode,
		StatusLabel:     emp.StatusLabel,
		ContractType:    string(emp.ContractType),
		HourlyRate:      hourlyRateStr,
		WeeklyHours:     emp.WeeklyHours,
		MonthlyHours:    emp.MonthlyHours,
		Color:           emp.Color,
		Lifecycle:       string(emp.Lifecycle),
		Languages:       languages,
		ExperienceLevel: string(emp.ExperienceLevel),
		HireDate:        emp.HireDate.Format("2006-01-02"),
		AnnualLeaveDays: emp.AnnualLeaveDays,
		SickLeaveDays:   emp.SickLeaveDays,
		CurrentYear:     emp.CurrentYear,
		CreatedAt:       emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       emp.UpdatedAt.Format(time.RFC3339),
	}
}
