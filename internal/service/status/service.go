package status

import (
	"context"
	"fmt"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/status"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
)

type StatusServiceImpl struct {
	statusRepo status.StatusRepository
}

func NewStatusService(statusRepo status.StatusRepository) status.StatusService {
	return &StatusServiceImpl{statusRepo: statusRepo}
}

// ListStatuses implements status.StatusService.
func (s *StatusServiceImpl) ListStatuses(ctx context.Context) ([]status.StatusResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	statuses, err := s.statusRepo.ListByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	responses := make([]status.StatusResponse, 0, len(statuses))
	for _, st := range statuses {
		responses = append(responses, mapStatusToResponse(st))
	}

	return responses, nil
}

// GetStatus implements status.StatusService.
func (s *StatusServiceImpl) GetStatus(ctx context.Context, code string) (status.StatusResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return status.StatusResponse{}, err
	}

	st, err := s.statusRepo.GetByCode(ctx, tenantID, code)
	if err != nil {
		return status.StatusResponse{}, err
	}

	return mapStatusToResponse(st), nil
}

// CreateStatus implements status.StatusService.
func (s *StatusServiceImpl) CreateStatus(ctx context.Context, req status.CreateStatusRequest) (status.StatusResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return status.StatusResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return status.StatusResponse{}, err
	}

	exists, err := s.statusRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return status.StatusResponse{}, fmt.Errorf("failed to check status code: %w", err)
	}
	if exists {
		return status.StatusResponse{}, status.ErrStatusCodeExists
	}

	created, err := s.statusRepo.Create(ctx, status.EmployeeStatus{
		TenantID:  tenantID,
		Code:      req.Code,
		Label:     req.Label,
		Limits:    req.Limits,
		IsStudent: req.IsStudent,
		Color:     req.Color,
	})
	if err != nil {
		return status.StatusResponse{}, fmt.Errorf("failed to create status: %w", err)
	}

	return mapStatusToResponse(created), nil
}

// UpdateStatus implements status.StatusService.
func (s *StatusServiceImpl) UpdateStatus(ctx context.Context, code string, req status.UpdateStatusRequest) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return err
	}

	return s.statusRepo.Update(ctx, tenantID, code, req)
}

func mapStatusToResponse(st status.EmployeeStatus) status.StatusResponse {
	return status.StatusResponse{
		ID:        st.ID,
		Code:      st.Code,
		Label:     st.Label,
		Limits:    st.Limits,
		IsStudent: st.IsStudent,
		Color:     st.Color,
	}
}
