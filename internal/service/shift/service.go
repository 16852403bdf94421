package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/employee"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/shift"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/site"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
)

type ShiftServiceImpl struct {
	shiftRepo      shift.ShiftRepository
	assignmentRepo shift.AssignmentRepository
	siteRepo       site.SiteRepository
	employeeRepo   employee.EmployeeRepository
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.AssignmentRepository,
	siteRepo site.SiteRepository,
	employeeRepo employee.EmployeeRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		siteRepo:       siteRepo,
		employeeRepo:   employeeRepo,
	}
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	shifts, err := s.shiftRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, mapShiftToResponse(sh))
	}

	return responses, nil
}

// GetShift implements shift.ShiftService. Assignments are loaded with
// the shift.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	assignments, err := s.assignmentRepo.ListByShiftID(ctx, tenantID, id)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to list assignments: %w", err)
	}
	sh.Assignments = assignments

	return mapShiftToResponse(sh), nil
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	st, err := s.siteRepo.GetByID(ctx, tenantID, req.SiteID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !st.Active {
		return shift.ShiftResponse{}, site.ErrSiteInactive
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		TenantID:     tenantID,
		SiteID:       req.SiteID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Requirements: req.Requirements,
		Status:       shift.StatusDraft,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return mapShiftToResponse(created), nil
}

// UpdateShift implements shift.ShiftService. Only draft and open
// shifts may change.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, id string, req shift.UpdateShiftRequest) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.shiftRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.Status != shift.StatusDraft && existing.Status != shift.StatusOpen {
		return shift.ErrInvalidStatus
	}

	return s.shiftRepo.Update(ctx, tenantID, id, req)
}

// TransitionShift implements shift.ShiftService.
func (s *ShiftServiceImpl) TransitionShift(ctx context.Context, id string, req shift.TransitionShiftRequest) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return err
	}
	next := shift.Status(req.Status)

	existing, err := s.shiftRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !existing.Status.CanTransitionTo(next) {
		return shift.ErrIllegalStatusTransition
	}

	if err := s.shiftRepo.SetStatus(ctx, tenantID, id, next); err != nil {
		return err
	}

	slog.Info("shift transitioned", "shift_id", id, "from", existing.Status, "to", next)
	return nil
}

// DeleteShift implements shift.ShiftService. Only drafts may be
// deleted; anything later must be walked through the status graph.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.shiftRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.Status != shift.StatusDraft {
		return shift.ErrInvalidStatus
	}

	return s.shiftRepo.Delete(ctx, tenantID, id)
}

// ProposeAssignment implements shift.ShiftService.
func (s *ShiftServiceImpl) ProposeAssignment(ctx context.Context, shiftID string, req shift.ProposeAssignmentRequest) (shift.AssignmentResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, tenantID, shiftID)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}
	if sh.Status != shift.StatusOpen {
		return shift.AssignmentResponse{}, shift.ErrShiftNotOpen
	}

	emp, err := s.employeeRepo.GetByID(ctx, tenantID, req.EmployeeID)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}
	if !emp.IsActive() {
		return shift.AssignmentResponse{}, employee.ErrEmployeeArchived
	}

	_, err = s.assignmentRepo.GetByShiftAndEmployee(ctx, tenantID, shiftID, req.EmployeeID)
	if err == nil {
		return shift.AssignmentResponse{}, shift.ErrAlreadyAssigned
	}
	if !errors.Is(err, shift.ErrAssignmentNotFound) {
		return shift.AssignmentResponse{}, err
	}

	created, err := s.assignmentRepo.Create(ctx, shift.Assignment{
		TenantID:   tenantID,
		ShiftID:    shiftID,
		EmployeeID: req.EmployeeID,
		Status:     shift.AssignmentStatusProposed,
		Role:       req.Role,
	})
	if err != nil {
		return shift.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return mapAssignmentToResponse(created), nil
}

// ConfirmAssignment implements shift.ShiftService.
func (s *ShiftServiceImpl) ConfirmAssignment(ctx context.Context, shiftID, assignmentID string) error {
	return s.setAssignmentStatus(ctx, shiftID, assignmentID, shift.AssignmentStatusConfirmed)
}

// DeclineAssignment implements shift.ShiftService.
func (s *ShiftServiceImpl) DeclineAssignment(ctx context.Context, shiftID, assignmentID string) error {
	return s.setAssignmentStatus(ctx, shiftID, assignmentID, shift.AssignmentStatusDeclined)
}

func (s *ShiftServiceImpl) setAssignmentStatus(ctx context.Context, shiftID, assignmentID string, status shift.AssignmentStatus) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	asg, err := s.assignmentRepo.GetByID(ctx, tenantID, assignmentID)
	if err != nil {
		return err
	}
	if asg.ShiftID != shiftID {
		return shift.ErrAssignmentNotFound
	}

	return s.assignmentRepo.SetStatus(ctx, tenantID, assignmentID, status)
}

func mapShiftToResponse(sh shift.Shift) shift.ShiftResponse {
	assignments := make([]shift.AssignmentResponse, 0, len(sh.Assignments))
	for _, asg := range sh.Assignments {
		assignments = append(assignments, mapAssignmentToResponse(asg))
	}

	return shift.ShiftResponse{
		ID:           sh.ID,
		SiteID:       sh.SiteID,
		Date:         sh.Date.Format("2006-01-02"),
		StartTime:    sh.StartTime,
		EndTime:      sh.EndTime,
		Requirements: sh.Requirements,
		Status:       string(sh.Status),
		Assignments:  assignments,
		CreatedAt:    sh.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    sh.UpdatedAt.Format(time.RFC3339),
	}
}

func mapAssignmentToResponse(asg shift.Assignment) shift.AssignmentResponse {
	return shift.AssignmentResponse{
		ID:         asg.ID,
		ShiftID:    asg.ShiftID,
		EmployeeID: asg.EmployeeID,
		Status:     string(asg.Status),
		Role:       asg.Role,
		Score:      asg.Score,
	}
}
