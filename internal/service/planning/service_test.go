package planning

import (
	"context"
	"testing"
	"time"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/planning"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/shift"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/site"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenantID = "00000000-0000-0000-0000-000000000001"

type fakeGenerationRepo struct {
	planning.GenerationRepository
	gen       planning.Generation
	getErr    error
	setStatus *planning.Status
	created   *planning.Generation
}

func (f *fakeGenerationRepo) GetByID(ctx context.Context, tenantID string, id string) (planning.Generation, error) {
	if f.getErr != nil {
		return planning.Generation{}, f.getErr
	}
	return f.gen, nil
}

func (f *fakeGenerationRepo) Create(ctx context.Context, newGeneration planning.Generation) (planning.Generation, error) {
	newGeneration.ID = "gen-1"
	newGeneration.CreatedAt = time.Now()
	f.created = &newGeneration
	return newGeneration, nil
}

func (f *fakeGenerationRepo) SetStatus(ctx context.Context, tenantID string, id string, status planning.Status, results *planning.Results) error {
	f.setStatus = &status
	return nil
}

type fakeSiteRepo struct {
	site.SiteRepository
	st site.Site
}

func (f *fakeSiteRepo) GetByID(ctx context.Context, tenantID string, id string) (site.Site, error) {
	return f.st, nil
}

type fakeAssignmentRepo struct {
	shift.AssignmentRepository
	existing *shift.Assignment
	created  []shift.Assignment
	scored   map[string]float64
}

func (f *fakeAssignmentRepo) GetByShiftAndEmployee(ctx context.Context, tenantID string, shiftID, employeeID string) (shift.Assignment, error) {
	if f.existing != nil && f.existing.ShiftID == shiftID && f.existing.EmployeeID == employeeID {
		return *f.existing, nil
	}
	return shift.Assignment{}, shift.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, newAssignment shift.Assignment) (shift.Assignment, error) {
	newAssignment.ID = "asg-1"
	f.created = append(f.created, newAssignment)
	return newAssignment, nil
}

func (f *fakeAssignmentRepo) SetScore(ctx context.Context, tenantID string, id string, score float64) error {
	if f.scored == nil {
		f.scored = map[string]float64{}
	}
	f.scored[id] = score
	return nil
}

func tenantCtx() context.Context {
	return tenant.WithTenant(context.Background(), testTenantID)
}

func runningGeneration() planning.Generation {
	return planning.Generation{
		ID:          "gen-1",
		TenantID:    testTenantID,
		PeriodStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		SiteIDs:     []string{"site-1"},
		Status:      planning.StatusRunning,
	}
}

func TestStartGenerationRejectsInactiveSite(t *testing.T) {
	repo := &fakeGenerationRepo{}
	svc := &PlanningServiceImpl{
		generationRepo: repo,
		siteRepo:       &fakeSiteRepo{st: site.Site{ID: "site-1", Active: false}},
	}

	_, err := svc.StartGeneration(tenantCtx(), planning.StartGenerationRequest{
		PeriodStart: "2026-03-02",
		PeriodEnd:   "2026-03-08",
		SiteIDs:     []string{"site-1"},
	})

	assert.ErrorIs(t, err, site.ErrSiteInactive)
	assert.Nil(t, repo.created)
}

func TestStartGenerationCreatesRunning(t *testing.T) {
	repo := &fakeGenerationRepo{}
	svc := &PlanningServiceImpl{
		generationRepo: repo,
		siteRepo:       &fakeSiteRepo{st: site.Site{ID: "site-1", Active: true}},
	}

	result, err := svc.StartGeneration(tenantCtx(), planning.StartGenerationRequest{
		PeriodStart: "2026-03-02",
		PeriodEnd:   "2026-03-08",
		SiteIDs:     []string{"site-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, string(planning.StatusRunning), result.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, testTenantID, repo.created.TenantID)
}

func TestCompleteGenerationRequiresRunning(t *testing.T) {
	gen := runningGeneration()
	gen.Status = planning.StatusCompleted
	repo := &fakeGenerationRepo{gen: gen}
	svc := &PlanningServiceImpl{generationRepo: repo}

	err := svc.CompleteGeneration(tenantCtx(), gen.ID, planning.CompleteGenerationRequest{})

	assert.ErrorIs(t, err, planning.ErrGenerationNotRunning)
	assert.Nil(t, repo.setStatus)
}

func TestFailGenerationMarksFailed(t *testing.T) {
	repo := &fakeGenerationRepo{gen: runningGeneration()}
	svc := &PlanningServiceImpl{generationRepo: repo}

	err := svc.FailGeneration(tenantCtx(), "gen-1")

	require.NoError(t, err)
	require.NotNil(t, repo.setStatus)
	assert.Equal(t, planning.StatusFailed, *repo.setStatus)
}

func TestApplyGenerationRequiresCompleted(t *testing.T) {
	repo := &fakeGenerationRepo{gen: runningGeneration()}
	svc := &PlanningServiceImpl{generationRepo: repo}

	err := svc.ApplyGeneration(tenantCtx(), "gen-1")

	assert.ErrorIs(t, err, planning.ErrGenerationNotComplete)
}

func TestApplyGenerationFailsWithoutBackend(t *testing.T) {
	gen := runningGeneration()
	gen.Status = planning.StatusCompleted
	repo := &fakeGenerationRepo{gen: gen}
	svc := &PlanningServiceImpl{generationRepo: repo, db: database.NewFallbackClient()}

	err := svc.ApplyGeneration(tenantCtx(), "gen-1")

	assert.ErrorIs(t, err, database.ErrBackendNotConfigured)
}

func TestMaterializeProposalsCreatesProposed(t *testing.T) {
	asgRepo := &fakeAssignmentRepo{}
	svc := &PlanningServiceImpl{assignmentRepo: asgRepo}
	role := "server"

	err := svc.materializeProposals(tenantCtx(), testTenantID, []planning.Proposal{
		{ShiftID: "shift-1", EmployeeID: "emp-1", Role: &role, Score: 0.92},
		{ShiftID: "shift-1", EmployeeID: "emp-2", Score: 0.81},
	})

	require.NoError(t, err)
	require.Len(t, asgRepo.created, 2)
	first := asgRepo.created[0]
	assert.Equal(t, shift.AssignmentStatusProposed, first.Status)
	assert.Equal(t, "shift-1", first.ShiftID)
	require.NotNil(t, first.Score)
	assert.InDelta(t, 0.92, *first.Score, 1e-9)
	require.NotNil(t, first.Role)
	assert.Equal(t, "server", *first.Role)
	assert.Nil(t, asgRepo.created[1].Role)
}

func TestMaterializeProposalsRefreshesExistingScore(t *testing.T) {
	asgRepo := &fakeAssignmentRepo{
		existing: &shift.Assignment{ID: "asg-9", ShiftID: "shift-1", EmployeeID: "emp-1", Status: shift.AssignmentStatusConfirmed},
	}
	svc := &PlanningServiceImpl{assignmentRepo: asgRepo}

	err := svc.materializeProposals(tenantCtx(), testTenantID, []planning.Proposal{
		{ShiftID: "shift-1", EmployeeID: "emp-1", Score: 0.77},
	})

	require.NoError(t, err)
	assert.Empty(t, asgRepo.created)
	assert.InDelta(t, 0.77, asgRepo.scored["asg-9"], 1e-9)
}
