package leave

import (
	"context"
	"testing"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/employee"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/leave"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenantID = "00000000-0000-0000-0000-000000000001"

// fakeLeaveRepo serves a fixed leave set; only the methods the summary
// and create paths touch are meaningful.
type fakeLeaveRepo struct {
	leave.LeaveRepository
	leaves      []leave.EmployeeLeave
	overlapping bool
	created     *leave.EmployeeLeave
}

func (f *fakeLeaveRepo) ListByEmployeeAndYear(ctx context.Context, tenantID string, employeeID string, year int) ([]leave.EmployeeLeave, error) {
	return f.leaves, nil
}

func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, tenantID string, employeeID string, start, end time.Time) (bool, error) {
	return f.overlapping, nil
}

func (f *fakeLeaveRepo) Create(ctx context.Context, newLeave leave.EmployeeLeave) (leave.EmployeeLeave, error) {
	newLeave.ID = "leave-1"
	f.created = &newLeave
	return newLeave, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	emp employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, tenantID string, id string) (employee.Employee, error) {
	return f.emp, nil
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:              "emp-1",
		TenantID:        testTenantID,
		Lifecycle:       employee.LifecycleActive,
		AnnualLeaveDays: 25,
		SickLeaveDays:   10,
	}
}

func approvedLeave(leaveType leave.LeaveType, days int) leave.EmployeeLeave {
	return leave.EmployeeLeave{
		EmployeeID: "emp-1",
		LeaveType:  leaveType,
		DaysCount:  days,
		Status:     leave.StatusApproved,
	}
}

func TestComputeSummary(t *testing.T) {
	repo := &fakeLeaveRepo{leaves: []leave.EmployeeLeave{
		approvedLeave(leave.LeaveTypeAnnual, 10),
		approvedLeave(leave.LeaveTypeAnnual, 5),
		approvedLeave(leave.LeaveTypeSick, 3),
		approvedLeave(leave.LeaveTypeUnpaid, 4), // does not consume balances
		{EmployeeID: "emp-1", LeaveType: leave.LeaveTypeAnnual, DaysCount: 2, Status: leave.StatusPending},
		{EmployeeID: "emp-1", LeaveType: leave.LeaveTypeAnnual, DaysCount: 7, Status: leave.StatusRejected},
	}}
	s := &LeaveServiceImpl{leaveRepo: repo}

	summary, err := s.computeSummary(context.Background(), testTenantID, testEmployee(), 2026)
	require.NoError(t, err)

	assert.Equal(t, 15.0, summary.AnnualUsed)
	assert.Equal(t, 10.0, summary.AnnualRemaining)
	assert.Equal(t, 3.0, summary.SickUsed)
	assert.Equal(t, 7.0, summary.SickRemaining)
	assert.Equal(t, 1, summary.PendingLeaves)
	assert.Equal(t, 2026, summary.Year)
}

func TestComputeSummaryClampsAtZero(t *testing.T) {
	repo := &fakeLeaveRepo{leaves: []leave.EmployeeLeave{
		approvedLeave(leave.LeaveTypeAnnual, 30),
	}}
	s := &LeaveServiceImpl{leaveRepo: repo}

	summary, err := s.computeSummary(context.Background(), testTenantID, testEmployee(), 2026)
	require.NoError(t, err)

	assert.Equal(t, 30.0, summary.AnnualUsed)
	assert.Equal(t, 0.0, summary.AnnualRemaining)
}

func TestCreateLeaveRejectsOverlap(t *testing.T) {
	ctx := tenant.WithTenant(context.Background(), testTenantID)
	repo := &fakeLeaveRepo{overlapping: true}
	s := &LeaveServiceImpl{leaveRepo: repo, employeeRepo: &fakeEmployeeRepo{emp: testEmployee()}}

	_, err := s.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  string(leave.LeaveTypeAnnual),
		StartDate:  "2026-04-06",
		EndDate:    "2026-04-10",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestCreateLeaveRejectsInsufficientBalance(t *testing.T) {
	ctx := tenant.WithTenant(context.Background(), testTenantID)
	repo := &fakeLeaveRepo{leaves: []leave.EmployeeLeave{
		approvedLeave(leave.LeaveTypeAnnual, 22),
	}}
	s := &LeaveServiceImpl{leaveRepo: repo, employeeRepo: &fakeEmployeeRepo{emp: testEmployee()}}

	// 22 of 25 days used, a 5-day request cannot be covered.
	_, err := s.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  string(leave.LeaveTypeAnnual),
		StartDate:  "2026-04-06",
		EndDate:    "2026-04-10",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestCreateLeaveUnpaidSkipsBalanceCheck(t *testing.T) {
	ctx := tenant.WithTenant(context.Background(), testTenantID)
	repo := &fakeLeaveRepo{leaves: []leave.EmployeeLeave{
		approvedLeave(leave.LeaveTypeAnnual, 25),
	}}
	s := &LeaveServiceImpl{leaveRepo: repo, employeeRepo: &fakeEmployeeRepo{emp: testEmployee()}}

	resp, err := s.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  string(leave.LeaveTypeUnpaid),
		StartDate:  "2026-04-06",
		EndDate:    "2026-04-10",
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, 5, repo.created.DaysCount)
}

func TestCreateLeaveRejectsArchivedEmployee(t *testing.T) {
	ctx := tenant.WithTenant(context.Background(), testTenantID)
	emp := testEmployee()
	emp.Lifecycle = employee.LifecycleArchived
	s := &LeaveServiceImpl{leaveRepo: &fakeLeaveRepo{}, employeeRepo: &fakeEmployeeRepo{emp: emp}}

	_, err := s.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  string(leave.LeaveTypeAnnual),
		StartDate:  "2026-04-06",
		EndDate:    "2026-04-10",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeArchived)
}

func TestCreateLeaveRequiresTenant(t *testing.T) {
	s := &LeaveServiceImpl{}
	_, err := s.CreateLeave(context.Background(), leave.CreateLeaveRequest{})
	assert.ErrorIs(t, err, tenant.ErrMissingTenant)
}
