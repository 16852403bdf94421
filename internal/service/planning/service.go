package planning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/planning"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/shift"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/site"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/repository/postgresql"
)

type PlanningServiceImpl struct {
	generationRepo planning.GenerationRepository
	siteRepo       site.SiteRepository
	assignmentRepo shift.AssignmentRepository
	db             *database.Client
}

func NewPlanningService(
	generationRepo planning.GenerationRepository,
	siteRepo site.SiteRepository,
	assignmentRepo shift.AssignmentRepository,
	db *database.Client,
) planning.PlanningService {
	return &PlanningServiceImpl{
		generationRepo: generationRepo,
		siteRepo:       siteRepo,
		assignmentRepo: assignmentRepo,
		db:             db,
	}
}

// ListGenerations implements planning.PlanningService.
func (s *PlanningServiceImpl) ListGenerations(ctx context.Context) ([]planning.GenerationResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	generations, err := s.generationRepo.ListByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list planning generations: %w", err)
	}

	responses := make([]planning.GenerationResponse, 0, len(generations))
	for _, g := range generations {
		responses = append(responses, mapGenerationToResponse(g))
	}

	return responses, nil
}

// GetGeneration implements planning.PlanningService.
func (s *PlanningServiceImpl) GetGeneration(ctx context.Context, id string) (planning.GenerationResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return planning.GenerationResponse{}, err
	}

	g, err := s.generationRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return planning.GenerationResponse{}, err
	}

	return mapGenerationToResponse(g), nil
}

// StartGeneration implements planning.PlanningService. Every
// referenced site must exist and be active.
func (s *PlanningServiceImpl) StartGeneration(ctx context.Context, req planning.StartGenerationRequest) (planning.GenerationResponse, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return planning.GenerationResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return planning.GenerationResponse{}, err
	}

	for _, siteID := range req.SiteIDs {
		st, err := s.siteRepo.GetByID(ctx, tenantID, siteID)
		if err != nil {
			return planning.GenerationResponse{}, err
		}
		if !st.Active {
			return planning.GenerationResponse{}, site.ErrSiteInactive
		}
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)

	created, err := s.generationRepo.Create(ctx, planning.Generation{
		TenantID:    tenantID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		SiteIDs:     req.SiteIDs,
		Status:      planning.StatusRunning,
	})
	if err != nil {
		return planning.GenerationResponse{}, fmt.Errorf("failed to create planning generation: %w", err)
	}

	slog.Info("planning generation started", "generation_id", created.ID, "sites", len(created.SiteIDs))

	return mapGenerationToResponse(created), nil
}

// CompleteGeneration implements planning.PlanningService.
func (s *PlanningServiceImpl) CompleteGeneration(ctx context.Context, id string, req planning.CompleteGenerationRequest) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.generationRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.Status != planning.StatusRunning {
		return planning.ErrGenerationNotRunning
	}

	results := req.Results
	return s.generationRepo.SetStatus(ctx, tenantID, id, planning.StatusCompleted, &results)
}

// FailGeneration implements planning.PlanningService. A failed run
// carries no results.
func (s *PlanningServiceImpl) FailGeneration(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.generationRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.Status != planning.StatusRunning {
		return planning.ErrGenerationNotRunning
	}

	return s.generationRepo.SetStatus(ctx, tenantID, id, planning.StatusFailed, nil)
}

// ApplyGeneration implements planning.PlanningService. Only completed
// runs may be applied; the results payload is kept. Materializing the
// engine's proposals and flipping the status happen in one
// transaction so an apply never lands half-way.
func (s *PlanningServiceImpl) ApplyGeneration(ctx context.Context, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.generationRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.Status != planning.StatusCompleted {
		return planning.ErrGenerationNotComplete
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if existing.Results != nil {
			if err := s.materializeProposals(txCtx, tenantID, existing.Results.Proposals); err != nil {
				return err
			}
		}
		return s.generationRepo.SetStatus(txCtx, tenantID, id, planning.StatusApplied, existing.Results)
	})
	if err != nil {
		return err
	}

	slog.Info("planning generation applied", "generation_id", id)
	return nil
}

// materializeProposals turns engine proposals into PROPOSED
// assignments. A pair that is already assigned only gets its score
// refreshed.
func (s *PlanningServiceImpl) materializeProposals(ctx context.Context, tenantID string, proposals []planning.Proposal) error {
	for _, p := range proposals {
		asg, err := s.assignmentRepo.GetByShiftAndEmployee(ctx, tenantID, p.ShiftID, p.EmployeeID)
		if err == nil {
			if err := s.assignmentRepo.SetScore(ctx, tenantID, asg.ID, p.Score); err != nil {
				return fmt.Errorf("failed to update assignment score: %w", err)
			}
			continue
		}
		if !errors.Is(err, shift.ErrAssignmentNotFound) {
			return err
		}

		score := p.Score
		_, err = s.assignmentRepo.Create(ctx, shift.Assignment{
			TenantID:   tenantID,
			ShiftID:    p.ShiftID,
			EmployeeID: p.EmployeeID,
			Status:     shift.AssignmentStatusProposed,
			Role:       p.Role,
			Score:      &score,
		})
		if err != nil {
			return fmt.Errorf("failed to create proposed assignment: %w", err)
		}
	}
	return nil
}

func mapGenerationToResponse(g planning.Generation) planning.GenerationResponse {
	siteIDs := g.SiteIDs
	if siteIDs == nil {
		siteIDs = []string{}
	}

	return planning.GenerationResponse{
		ID:          g.ID,
		PeriodStart: g.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   g.PeriodEnd.Format("2006-01-02"),
		SiteIDs:     siteIDs,
		Status:      string(g.Status),
		Results:     g.Results,
		CreatedAt:   g.CreatedAt.Format(time.RFC3339),
	}
}
