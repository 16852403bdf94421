package planning

import "errors"

var (
	ErrGenerationNotFound   = errors.New("planning generation not found")
	ErrGenerationNotRunning = errors.New("planning generation is not running")
	ErrGenerationNotComplete = errors.New("planning generation has not completed")
	ErrResultsNotAllowed    = errors.New("results may only be set on completed or applied generations")
	ErrInvalidPeriod        = errors.New("period end must not precede period start")
	ErrNoSites              = errors.New("at least one site is required")
)
