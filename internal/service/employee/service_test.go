package employee

import (
	"context"
	"testing"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/availability"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/employee"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenantID = "00000000-0000-0000-0000-000000000001"

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	emp          employee.Employee
	setLifecycle *employee.Lifecycle
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, tenantID string, id string) (employee.Employee, error) {
	return f.emp, nil
}

func (f *fakeEmployeeRepo) SetLifecycle(ctx context.Context, tenantID string, id string, lifecycle employee.Lifecycle) error {
	f.setLifecycle = &lifecycle
	return nil
}

type fakeAvailabilityService struct {
	availability.AvailabilityService
	day availability.DayAvailability
	err error
}

func (f *fakeAvailabilityService) ResolveDay(ctx context.Context, employeeID string, date string) (availability.DayAvailability, error) {
	if f.err != nil {
		return availability.DayAvailability{}, f.err
	}
	return f.day, nil
}

func tenantCtx() context.Context {
	return tenant.WithTenant(context.Background(), testTenantID)
}

func TestArchiveEmployeeIsIdempotent(t *testing.T) {
	repo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1", Lifecycle: employee.LifecycleArchived}}
	s := &EmployeeServiceImpl{employeeRepo: repo}

	require.NoError(t, s.ArchiveEmployee(tenantCtx(), "emp-1"))
	assert.Nil(t, repo.setLifecycle, "archiving an archived employee must not write")
}

func TestArchiveEmployee(t *testing.T) {
	repo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1", Lifecycle: employee.LifecycleActive}}
	s := &EmployeeServiceImpl{employeeRepo: repo}

	require.NoError(t, s.ArchiveEmployee(tenantCtx(), "emp-1"))
	require.NotNil(t, repo.setLifecycle)
	assert.Equal(t, employee.LifecycleArchived, *repo.setLifecycle)
}

func TestRestoreEmployeeIsIdempotent(t *testing.T) {
	repo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1", Lifecycle: employee.LifecycleActive}}
	s := &EmployeeServiceImpl{employeeRepo: repo}

	require.NoError(t, s.RestoreEmployee(tenantCtx(), "emp-1"))
	assert.Nil(t, repo.setLifecycle, "restoring an active employee must not write")
}

func TestBuildCard(t *testing.T) {
	maxMonthly := 160.0
	emp := employee.EmployeeWithStatus{
		Employee: employee.Employee{
			ID:           "emp-1",
			FirstName:    "Marie",
			LastName:     "Dupont",
			Color:        "#FF5733",
			MonthlyHours: 145,
		},
		MaxMonthlyHours: &maxMonthly,
		IsStudent:       true,
	}
	s := &EmployeeServiceImpl{
		examCalendar:        employee.NoExamCalendar{},
		availabilityService: &fakeAvailabilityService{day: availability.DayAvailability{Available: true}},
	}

	card := s.buildCard(context.Background(), emp)

	assert.Equal(t, "MD", card.Initials)
	assert.Equal(t, "Marie Dupont", card.FullName)
	assert.Equal(t, "145h / 160h", card.HoursLabel)
	assert.InDelta(t, 90.625, card.HoursProgress, 0.001)
	assert.Equal(t, string(employee.TierCritical), card.HoursTier)
	require.NotNil(t, card.StudentBadge)
	assert.Equal(t, string(employee.StudentBadgeAvailable), *card.StudentBadge)
	assert.False(t, card.AvailabilityWarning)
}

func TestBuildCardUnavailableEmployee(t *testing.T) {
	emp := employee.EmployeeWithStatus{
		Employee: employee.Employee{ID: "emp-1", FirstName: "Jean", LastName: "Martin"},
	}
	s := &EmployeeServiceImpl{
		examCalendar:        employee.NoExamCalendar{},
		availabilityService: &fakeAvailabilityService{day: availability.DayAvailability{Available: false}},
	}

	card := s.buildCard(context.Background(), emp)

	assert.True(t, card.AvailabilityWarning)
	assert.Nil(t, card.StudentBadge)
	assert.Equal(t, "0h / 0h", card.HoursLabel)
	assert.Equal(t, 0.0, card.HoursProgress)
}

func TestBuildCardToleratesAvailabilityFailure(t *testing.T) {
	emp := employee.EmployeeWithStatus{
		Employee: employee.Employee{ID: "emp-1", FirstName: "Anna", LastName: "Schmidt"},
	}
	s := &EmployeeServiceImpl{
		examCalendar:        employee.NoExamCalendar{},
		availabilityService: &fakeAvailabilityService{err: context.DeadlineExceeded},
	}

	card := s.buildCard(context.Background(), emp)

	// Resolution failure suppresses the badge rather than failing the card.
	assert.False(t, card.AvailabilityWarning)
	assert.Equal(t, "AS", card.Initials)
}
