package status

import "context"

type StatusService interface {
	ListStatuses(ctx context.Context) ([]StatusResponse, error)
	GetStatus(ctx context.Context, code string) (StatusResponse, error)
	CreateStatus(ctx context.Context, req CreateStatusRequest) (StatusResponse, error)
	UpdateStatus(ctx context.Context, code string, req UpdateStatusRequest) error
}
