package shift

import (
	"context"
	"testing"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/employee"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/shift"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenantID = "00000000-0000-0000-0000-000000000001"

type fakeShiftRepo struct {
	shift.ShiftRepository
	sh        shift.Shift
	getErr    error
	setStatus *shift.Status
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, tenantID string, id string) (shift.Shift, error) {
	if f.getErr != nil {
		return shift.Shift{}, f.getErr
	}
	return f.sh, nil
}

func (f *fakeShiftRepo) SetStatus(ctx context.Context, tenantID string, id string, status shift.Status) error {
	f.setStatus = &status
	return nil
}

type fakeAssignmentRepo struct {
	shift.AssignmentRepository
	existing *shift.Assignment
	created  *shift.Assignment
}

func (f *fakeAssignmentRepo) GetByShiftAndEmployee(ctx context.Context, tenantID string, shiftID, employeeID string) (shift.Assignment, error) {
	if f.existing == nil {
		return shift.Assignment{}, shift.ErrAssignmentNotFound
	}
	return *f.existing, nil
}

func (f *fakeAssignmentRepo) GetByID(ctx context.Context, tenantID string, id string) (shift.Assignment, error) {
	if f.existing == nil {
		return shift.Assignment{}, shift.ErrAssignmentNotFound
	}
	return *f.existing, nil
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, newAssignment shift.Assignment) (shift.Assignment, error) {
	newAssignment.ID = "asg-1"
	f.created = &newAssignment
	return newAssignment, nil
}

func (f *fakeAssignmentRepo) SetStatus(ctx context.Context, tenantID string, id string, status shift.AssignmentStatus) error {
	f.existing.Status = status
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	emp employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, tenantID string, id string) (employee.Employee, error) {
	return f.emp, nil
}

func activeEmployee() employee.Employee {
	return employee.Employee{ID: "emp-1", Lifecycle: employee.LifecycleActive}
}

func openShift() shift.Shift {
	return shift.Shift{ID: "shift-1", TenantID: testTenantID, Status: shift.StatusOpen}
}

func tenantCtx() context.Context {
	return tenant.WithTenant(context.Background(), testTenantID)
}

func TestProposeAssignment(t *testing.T) {
	shiftRepo := &fakeShiftRepo{sh: openShift()}
	asgRepo := &fakeAssignmentRepo{}
	s := &ShiftServiceImpl{
		shiftRepo:      shiftRepo,
		assignmentRepo: asgRepo,
		employeeRepo:   &fakeEmployeeRepo{emp: activeEmployee()},
	}

	resp, err := s.ProposeAssignment(tenantCtx(), "shift-1", shift.ProposeAssignmentRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, string(shift.AssignmentStatusProposed), resp.Status)
	require.NotNil(t, asgRepo.created)
	assert.Equal(t, "emp-1", asgRepo.created.EmployeeID)
}

func TestProposeAssignmentRequiresOpenShift(t *testing.T) {
	for _, status := range []shift.Status{shift.StatusDraft, shift.StatusClosed, shift.StatusPublished, shift.StatusCompleted} {
		sh := openShift()
		sh.Status = status
		s := &ShiftServiceImpl{
			shiftRepo:      &fakeShiftRepo{sh: sh},
			assignmentRepo: &fakeAssignmentRepo{},
			employeeRepo:   &fakeEmployeeRepo{emp: activeEmployee()},
		}

		_, err := s.ProposeAssignment(tenantCtx(), "shift-1", shift.ProposeAssignmentRequest{EmployeeID: "emp-1"})
		assert.ErrorIs(t, err, shift.ErrShiftNotOpen, "status %s", status)
	}
}

func TestProposeAssignmentRejectsArchivedEmployee(t *testing.T) {
	emp := activeEmployee()
	emp.Lifecycle = employee.LifecycleArchived
	s := &ShiftServiceImpl{
		shiftRepo:      &fakeShiftRepo{sh: openShift()},
		assignmentRepo: &fakeAssignmentRepo{},
		employeeRepo:   &fakeEmployeeRepo{emp: emp},
	}

	_, err := s.ProposeAssignment(tenantCtx(), "shift-1", shift.ProposeAssignmentRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, employee.ErrEmployeeArchived)
}

func TestProposeAssignmentRejectsDuplicate(t *testing.T) {
	existing := shift.Assignment{ID: "asg-1", ShiftID: "shift-1", EmployeeID: "emp-1"}
	s := &ShiftServiceImpl{
		shiftRepo:      &fakeShiftRepo{sh: openShift()},
		assignmentRepo: &fakeAssignmentRepo{existing: &existing},
		employeeRepo:   &fakeEmployeeRepo{emp: activeEmployee()},
	}

	_, err := s.ProposeAssignment(tenantCtx(), "shift-1", shift.ProposeAssignmentRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, shift.ErrAlreadyAssigned)
}

func TestTransitionShift(t *testing.T) {
	shiftRepo := &fakeShiftRepo{sh: shift.Shift{ID: "shift-1", Status: shift.StatusDraft}}
	s := &ShiftServiceImpl{shiftRepo: shiftRepo}

	err := s.TransitionShift(tenantCtx(), "shift-1", shift.TransitionShiftRequest{Status: string(shift.StatusOpen)})
	require.NoError(t, err)
	require.NotNil(t, shiftRepo.setStatus)
	assert.Equal(t, shift.StatusOpen, *shiftRepo.setStatus)
}

func TestTransitionShiftRejectsIllegalMove(t *testing.T) {
	shiftRepo := &fakeShiftRepo{sh: shift.Shift{ID: "shift-1", Status: shift.StatusDraft}}
	s := &ShiftServiceImpl{shiftRepo: shiftRepo}

	err := s.TransitionShift(tenantCtx(), "shift-1", shift.TransitionShiftRequest{Status: string(shift.StatusCompleted)})
	assert.ErrorIs(t, err, shift.ErrIllegalStatusTransition)
	assert.Nil(t, shiftRepo.setStatus)
}

func TestConfirmAssignmentChecksShiftOwnership(t *testing.T) {
	existing := shift.Assignment{ID: "asg-1", ShiftID: "other-shift", EmployeeID: "emp-1", Status: shift.AssignmentStatusProposed}
	s := &ShiftServiceImpl{assignmentRepo: &fakeAssignmentRepo{existing: &existing}}

	err := s.ConfirmAssignment(tenantCtx(), "shift-1", "asg-1")
	assert.ErrorIs(t, err, shift.ErrAssignmentNotFound)
}

func TestConfirmAndDeclineAssignment(t *testing.T) {
	existing := shift.Assignment{ID: "asg-1", ShiftID: "shift-1", EmployeeID: "emp-1", Status: shift.AssignmentStatusProposed}
	asgRepo := &fakeAssignmentRepo{existing: &existing}
	s := &ShiftServiceImpl{assignmentRepo: asgRepo}

	require.NoError(t, s.ConfirmAssignment(tenantCtx(), "shift-1", "asg-1"))
	assert.Equal(t, shift.AssignmentStatusConfirmed, asgRepo.existing.Status)

	require.NoError(t, s.DeclineAssignment(tenantCtx(), "shift-1", "asg-1"))
	assert.Equal(t, shift.AssignmentStatusDeclined, asgRepo.existing.Status)
}

func TestDeleteShiftOnlyDrafts(t *testing.T) {
	s := &ShiftServiceImpl{shiftRepo: &fakeShiftRepo{sh: shift.Shift{ID: "shift-1", Status: shift.StatusOpen}}}

	err := s.DeleteShift(tenantCtx(), "shift-1")
	assert.ErrorIs(t, err, shift.ErrInvalidStatus)
}
