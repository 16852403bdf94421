package planning

import "context"

type PlanningService interface {
	ListGenerations(ctx context.Context) ([]GenerationResponse, error)
	GetGeneration(ctx context.Context, id string) (GenerationResponse, error)
	StartGeneration(ctx context.Context, req StartGenerationRequest) (GenerationResponse, error)
	CompleteGeneration(ctx context.Context, id string, req CompleteGenerationRequest) error
	FailGeneration(ctx context.Context, id string) error
	ApplyGeneration(ctx context.Context, id string) error
}
