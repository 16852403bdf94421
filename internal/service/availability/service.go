package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/availability"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/leave"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
)

type AvailabilityServiceImpl struct {
	patternRepo   availability.PatternRepository
	exceptionRepo availability.ExceptionRepository
	leaveRepo     leave.LeaveRepository
}

func NewAvailabilityService(
	patternRepo availability.PatternRepository,
	exceptionRepo availability.ExceptionRepository,
	leaveRepo leave.LeaveRepository,
) availability.AvailabilityService {
	return &AvailabilityServiceImpl{
		patternRepo:   patternRepo,
		exceptionRepo: exceptionRepo,
		leaveRepo:     leaveRepo,
	}
}

// ListPatterns implements availability.AvailabilityService.
func (s *AvailabilityServiceImpl) ListPatterns(ctx context.Context, employeeID string, activeOnly bool) ([]availability.PatternResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	patterns, err := s.patternRepo.ListByEmployeeID(ctx, tenantID, employeeID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	responses := make([]availability.PatternResponse, 0, len(patterns))
	for _, p := range patterns {
		responses = append(responses, mapPatternToResponse(p))
	}

	return responses, nil
}

// CreatePattern implements availability.AvailabilityService.
func (s *AvailabilityServiceImpl) CreatePattern(ctx context.Context, req availability.CreatePatternRequest) (availability.PatternResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return availability.PatternResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return availability.PatternResponse{}, err
	}

	validFrom, _ := time.Parse("2006-01-02", req.ValidFrom)

	newPattern := availability.Pattern{
		TenantID:        tenantID,
		EmployeeID:      req.EmployeeID,
		PatternType:     availability.PatternType(req.PatternType),
		TimeSlots:       availability.TimeSlots(req.TimeSlots),
		ConfidenceLevel: req.ConfidenceLevel,
		ValidFrom:       validFrom,
		Active:          true,
	}
	if req.ValidUntil != nil {
		validUntil, _ := time.Parse("2006-01-02", *req.ValidUntil)
		newPattern.ValidUntil = &validUntil
	}

	created, err := s.patternRepo.Create(ctx, newPattern)
	if err != nil {
		return availability.PatternResponse{}, fmt.Errorf("failed to create pattern: %w", err)
	}

	return mapPatternToResponse(created), nil
}

// UpdatePattern implements availability.AvailabilityService.
func (s *AvailabilityServiceImpl) UpdatePattern(ctx context.Context, id string, req availability.UpdatePatternRequest) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return err
	}

	return s.patternRepo.Update(ctx, tenantID, id, req)
}

// CreateException implements availability.AvailabilityService. New
// exceptions start unapproved and have no effect until approved.
func (s *AvailabilityServiceImpl) CreateException(ctx context.Context, req availability.CreateExceptionRequest) (availability.ExceptionResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return availability.ExceptionResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return availability.ExceptionResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.exceptionRepo.Create(ctx, availability.Exception{
		TenantID:   tenantID,
		EmployeeID: req.EmployeeID,
		Date:       date,
		Type:       availability.ExceptionType(req.Type),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
		Approved:   false,
	})
	if err != nil {
		return availability.ExceptionResponse{}, fmt.Errorf("failed to create exception: %w", err)
	}

	return mapExceptionToResponse(created), nil
}

// ApproveException implements availability.AvailabilityService.
func (s *AvailabilityServiceImpl) ApproveException(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.exceptionRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.Approved {
		return availability.ErrExceptionAlreadyApproved
	}

	return s.exceptionRepo.Approve(ctx, tenantID, id)
}

// DeleteException implements availability.AvailabilityService.
func (s *AvailabilityServiceImpl) DeleteException(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	return s.exceptionRepo.Delete(ctx, tenantID, id)
}

// ResolveDay implements availability.AvailabilityService. Precedence:
// approved leave, then approved exceptions, then active patterns. With
// no matching declaration the employee counts as not available.
func (s *AvailabilityServiceImpl) ResolveDay(ctx context.Context, employeeID string, dateStr string) (availability.DayAvailability, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return availability.DayAvailability{}, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return availability.DayAvailability{}, fmt.Errorf("failed to parse date: %w", err)
	}

	day := availability.DayAvailability{
		EmployeeID: employeeID,
		Date:       dateStr,
		Available:  false,
		Source:     "none",
	}

	onLeave, err := s.leaveRepo.ApprovedOnDate(ctx, tenantID, employeeID, date)
	if err != nil {
		return availability.DayAvailability{}, fmt.Errorf("failed to check leave: %w", err)
	}
	if onLeave {
		day.Source = "leave"
		return day, nil
	}

	exceptions, err := s.exceptionRepo.ListByEmployeeAndDate(ctx, tenantID, employeeID, date)
	if err != nil {
		return availability.DayAvailability{}, fmt.Errorf("failed to list exceptions: %w", err)
	}
	for _, exc := range exceptions {
		if !exc.Approved {
			continue
		}
		day.Source = "exception"
		day.Available = exc.Type == availability.ExceptionTypeAvailable
		day.StartTime = exc.StartTime
		day.EndTime = exc.EndTime
		return day, nil
	}

	patterns, err := s.patternRepo.ListByEmployeeID(ctx, tenantID, employeeID, true)
	if err != nil {
		return availability.DayAvailability{}, fmt.Errorf("failed to list patterns: %w", err)
	}
	for _, p := range patterns {
		if slot, ok := patternSlotFor(p, date); ok {
			day.Source = "pattern"
			day.Available = slot.Available
			if slot.Available {
				start, end := slot.StartTime, slot.EndTime
				day.StartTime = &start
				day.EndTime = &end
			}
			return day, nil
		}
	}

	return day, nil
}

// patternSlotFor returns the slot covering date, honoring the pattern
// validity window and biweekly parity relative to valid_from.
func patternSlotFor(p availability.Pattern, date time.Time) (availability.TimeSlot, bool) {
	if date.Before(truncateDay(p.ValidFrom)) {
		return availability.TimeSlot{}, false
	}
	if p.ValidUntil != nil && date.After(truncateDay(*p.ValidUntil)) {
		return availability.TimeSlot{}, false
	}

	if p.PatternType == availability.PatternTypeBiweekly {
		weeks := int(date.Sub(startOfWeek(p.ValidFrom)).Hours() / (24 * 7))
		if weeks%2 != 0 {
			return availability.TimeSlot{}, false
		}
	}

	weekday := int(date.Weekday())
	for _, slot := range p.TimeSlots {
		if slot.DayOfWeek == weekday {
			return slot, true
		}
	}
	return availability.TimeSlot{}, false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	day := truncateDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func mapPatternToResponse(p availability.Pattern) availability.PatternResponse {
	var validUntilStr *string
	if p.ValidUntil != nil {
		s := p.ValidUntil.Format("2006-01-02")
		validUntilStr = &s
	}

	return availability.PatternResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		PatternType:     string(p.PatternType),
		TimeSlots:       p.TimeSlots,
		ConfidenceLevel: p.ConfidenceLevel,
		ValidFrom:       p.ValidFrom.Format("2006-01-02"),
		ValidUntil:      validUntilStr,
		Active:          p.Active,
	}
}

func mapExceptionToResponse(e availability.Exception) availability.ExceptionResponse {
	return availability.ExceptionResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date.Format("2006-01-02"),
		Type:       string(e.Type),
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		Reason:     e.Reason,
		Approved:   e.Approved,
	}
}
