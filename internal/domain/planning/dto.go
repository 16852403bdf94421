package planning

import (
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/validator"
)

type StartGenerationRequest struct {
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
	SiteIDs     []string `json:"site_ids"`
}

func (r StartGenerationRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not precede period_start"})
	}
	if len(r.SiteIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "site_ids", Message: "at least one site is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompleteGenerationRequest struct {
	Results Results `json:"results"`
}

type GenerationResponse struct {
	ID          string   `json:"id"`
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
	SiteIDs     []string `json:"site_ids"`
	Status      string   `json:"status"`
	Results     *Results `json:"results,omitempty"`
	CreatedAt   string   `json:"created_at"`
}
