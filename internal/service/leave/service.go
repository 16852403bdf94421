package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/employee"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/leave"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{leaveRepo: leaveRepo, employeeRepo: employeeRepo}
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, mapLeaveToResponse(l))
	}

	return responses, nil
}

// GetLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.leaveRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapLeaveToResponse(l), nil
}

// CreateLeave implements leave.LeaveService. The request starts
// PENDING; balances are checked up front so an obviously uncoverable
// annual or sick request is rejected immediately.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, tenantID, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !emp.IsActive() {
		return leave.LeaveResponse{}, employee.ErrEmployeeArchived
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	daysCount := leave.DaysBetween(start, end)

	overlapping, err := s.leaveRepo.HasOverlapping(ctx, tenantID, req.EmployeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping leaves: %w", err)
	}
	if overlapping {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	leaveType := leave.LeaveType(req.LeaveType)
	if leaveType == leave.LeaveTypeAnnual || leaveType == leave.LeaveTypeSick {
		summary, err := s.computeSummary(ctx, tenantID, emp, start.Year())
		if err != nil {
			return leave.LeaveResponse{}, err
		}
		remaining := summary.AnnualRemaining
		if leaveType == leave.LeaveTypeSick {
			remaining = summary.SickRemaining
		}
		if float64(daysCount) > remaining {
			return leave.LeaveResponse{}, leave.ErrInsufficientBalance
		}
	}

	created, err := s.leaveRepo.Create(ctx, leave.EmployeeLeave{
		TenantID:   tenantID,
		EmployeeID: req.EmployeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		DaysCount:  daysCount,
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave: %w", err)
	}

	slog.Info("leave requested", "leave_id", created.ID, "employee_id", created.EmployeeID, "days", created.DaysCount)

	return mapLeaveToResponse(created), nil
}

// ApproveLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeave(ctx context.Context, id string, req leave.ProcessLeaveRequest) error {
	return s.processLeave(ctx, id, leave.StatusApproved, req.ApproverID)
}

// RejectLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeave(ctx context.Context, id string, req leave.ProcessLeaveRequest) error {
	return s.processLeave(ctx, id, leave.StatusRejected, req.ApproverID)
}

func (s *LeaveServiceImpl) processLeave(ctx context.Context, id string, status leave.Status, approverID string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.leaveRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.Status != leave.StatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	var approver *string
	if approverID != "" {
		approver = &approverID
	}

	if err := s.leaveRepo.SetStatus(ctx, tenantID, id, status, approver); err != nil {
		return err
	}

	slog.Info("leave processed", "leave_id", id, "status", status)
	return nil
}

// CancelLeave implements leave.LeaveService. Pending and approved
// requests may be cancelled; rejected ones stay rejected.
func (s *LeaveServiceImpl) CancelLeave(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.leaveRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.Status != leave.StatusPending && existing.Status != leave.StatusApproved {
		return leave.ErrLeaveAlreadyProcessed
	}

	return s.leaveRepo.SetStatus(ctx, tenantID, id, leave.StatusCancelled, existing.ApproverID)
}

// GetSummary implements leave.LeaveService.
func (s *LeaveServiceImpl) GetSummary(ctx context.Context, employeeID string, year int) (leave.Summary, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return leave.Summary{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, tenantID, employeeID)
	if err != nil {
		return leave.Summary{}, err
	}

	return s.computeSummary(ctx, tenantID, emp, year)
}

// computeSummary derives the balance snapshot from the approved leave
// set for the year. Remaining balances never go below zero.
func (s *LeaveServiceImpl) computeSummary(ctx context.Context, tenantID string, emp employee.Employee, year int) (leave.Summary, error) {
	leaves, err := s.leaveRepo.ListByEmployeeAndYear(ctx, tenantID, emp.ID, year)
	if err != nil {
		return leave.Summary{}, fmt.Errorf("failed to list leaves for summary: %w", err)
	}

	summary := leave.Summary{
		EmployeeID:     emp.ID,
		AnnualAllotted: emp.AnnualLeaveDays,
		SickAllotted:   emp.SickLeaveDays,
		Year:           year,
	}

	for _, l := range leaves {
		switch l.Status {
		case leave.StatusApproved:
			switch l.LeaveType {
			case leave.LeaveTypeAnnual:
				summary.AnnualUsed += float64(l.DaysCount)
			case leave.LeaveTypeSick:
				summary.SickUsed += float64(l.DaysCount)
			}
		case leave.StatusPending:
			summary.PendingLeaves++
		}
	}

	summary.AnnualRemaining = clampZero(summary.AnnualAllotted - summary.AnnualUsed)
	summary.SickRemaining = clampZero(summary.SickAllotted - summary.SickUsed)

	return summary, nil
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func mapLeaveToResponse(l leave.EmployeeLeave) leave.LeaveResponse {
	var processedAtStr *string
	if l.ProcessedAt != nil {
		s := l.ProcessedAt.Format(time.RFC3339)
		processedAtStr = &s
	}

	return leave.LeaveResponse{
		ID:          l.ID,
		EmployeeID:  l.EmployeeID,
		LeaveType:   string(l.LeaveType),
		StartDate:   l.StartDate.Format("2006-01-02"),
		EndDate:     l.EndDate.Format("2006-01-02"),
		DaysCount:   l.DaysCount,
		Status:      string(l.Status),
		Reason:      l.Reason,
		ApproverID:  l.ApproverID,
		ProcessedAt: processedAtStr,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}
