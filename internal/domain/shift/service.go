package shift

import "context"

type ShiftService interface {
	ListShifts(ctx context.Context, filter ShiftFilter) ([]ShiftResponse, error)
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	UpdateShift(ctx context.Context, id string, req UpdateShiftRequest) error
	// TransitionShift enforces the status graph; illegal moves return
	// ErrIllegalStatusTransition.
	TransitionShift(ctx context.Context, id string, req TransitionShiftRequest) error
	DeleteShift(ctx context.Context, id string) error

	ProposeAssignment(ctx context.Context, shiftID string, req ProposeAssignmentRequest) (AssignmentResponse, error)
	ConfirmAssignment(ctx context.Context, shiftID, assignmentID string) error
	DeclineAssignment(ctx context.Context, shiftID, assignmentID string) error
}
