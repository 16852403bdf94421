package employee

import (
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeNumber  string   `json:"employee_number"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           *string  `json:"email,omitempty"`
	PhoneNumber     string   `json:"phone_number"`
	BirthDate       *string  `json:"birth_date,omitempty"`
	StatusCode      string   `json:"status_code"`
	ContractType    string   `json:"contract_type"`
	HourlyRate      *string  `json:"hourly_rate,omitempty"`
	WeeklyHours     float64  `json:"weekly_hours"`
	Color           string   `json:"color,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	ExperienceLevel string   `json:"experience_level"`
	HireDate        string   `json:"hire_date"`
	AnnualLeaveDays float64  `json:"annual_leave_days"`
	SickLeaveDays   float64  `json:"sick_leave_days"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeNumber) {
		errs = append(errs, validator.ValidationError{Field: "employee_number", Message: "is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !validator.IsEmpty(r.PhoneNumber) && !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "must be 10-13 digits"})
	}
	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "birth_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if validator.IsEmpty(r.StatusCode) {
		errs = append(errs, validator.ValidationError{Field: "status_code", Message: "is required"})
	}
	if !validator.IsOneOf(r.ContractType, ContractTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "must be one of permanent, fixed_term, student, interim"})
	}
	if !validator.IsOneOf(r.ExperienceLevel, ExperienceLevelValues) {
		errs = append(errs, validator.ValidationError{Field: "experience_level", Message: "must be one of junior, intermediate, senior"})
	}
	if r.WeeklyHours < 0 || r.WeeklyHours > 60 {
		errs = append(errs, validator.ValidationError{Field: "weekly_hours", Message: "must be between 0 and 60"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}
	if r.AnnualLeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_leave_days", Message: "must be non-negative"})
	}
	if r.SickLeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "sick_leave_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	EmployeeNumber  *string   `json:"employee_number,omitempty"`
	FirstName       *string   `json:"first_name,omitempty"`
	LastName        *string   `json:"last_name,omitempty"`
	Email           *string   `json:"email,omitempty"`
	PhoneNumber     *string   `json:"phone_number,omitempty"`
	BirthDate       *string   `json:"birth_date,omitempty"`
	StatusCode      *string   `json:"status_code,omitempty"`
	ContractType    *string   `json:"contract_type,omitempty"`
	HourlyRate      *string   `json:"hourly_rate,omitempty"`
	WeeklyHours     *float64  `json:"weekly_hours,omitempty"`
	MonthlyHours    *float64  `json:"monthly_hours,omitempty"`
	Color           *string   `json:"color,omitempty"`
	Languages       *[]string `json:"languages,omitempty"`
	ExperienceLevel *string   `json:"experience_level,omitempty"`
	HireDate        *string   `json:"hire_date,omitempty"`
	AnnualLeaveDays *float64  `json:"annual_leave_days,omitempty"`
	SickLeaveDays   *float64  `json:"sick_leave_days,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ContractType != nil && !validator.IsOneOf(*r.ContractType, ContractTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "must be one of permanent, fixed_term, student, interim"})
	}
	if r.ExperienceLevel != nil && !validator.IsOneOf(*r.ExperienceLevel, ExperienceLevelValues) {
		errs = append(errs, validator.ValidationError{Field: "experience_level", Message: "must be one of junior, intermediate, senior"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.WeeklyHours != nil && (*r.WeeklyHours < 0 || *r.WeeklyHours > 60) {
		errs = append(errs, validator.ValidationError{Field: "weekly_hours", Message: "must be between 0 and 60"})
	}
	if r.MonthlyHours != nil && *r.MonthlyHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_hours", Message: "must be non-negative"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Search       *string
	StatusCode   *string
	ContractType *string
	Lifecycle    *string
	SortBy       string
	SortOrder    string
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID              string   `json:"id"`
	EmployeeNumber  string   `json:"employee_number"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           *string  `json:"email,omitempty"`
	PhoneNumber     string   `json:"phone_number"`
	BirthDate       *string  `json:"birth_date,omitempty"`
	StatusCode      string   `json:"status_code"`
	StatusLabel     *string  `json:"status_label,omitempty"`
	ContractType    string   `json:"contract_type"`
	HourlyRate      *string  `json:"hourly_rate,omitempty"`
	WeeklyHours     float64  `json:"weekly_hours"`
	MonthlyHours    float64  `json:"monthly_hours"`
	Color           string   `json:"color"`
	Lifecycle       string   `json:"lifecycle"`
	Languages       []string `json:"languages"`
	ExperienceLevel string   `json:"experience_level"`
	HireDate        string   `json:"hire_date"`
	AnnualLeaveDays float64  `json:"annual_leave_days"`
	SickLeaveDays   float64  `json:"sick_leave_days"`
	CurrentYear     int      `json:"current_year"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// EmployeeCardResponse is the derived presentation state for one
// employee card.
type EmployeeCardResponse struct {
	ID                  string  `json:"id"`
	Initials            string  `json:"initials"`
	FullName            string  `json:"full_name"`
	Color               string  `json:"color"`
	HoursLabel          string  `json:"hours_label"`
	HoursProgress       float64 `json:"hours_progress"`
	HoursTier           string  `json:"hours_tier"`
	StudentBadge        *string `json:"student_badge,omitempty"`
	AvailabilityWarning bool    `json:"availability_warning"`
}

// EmployeeWithStatus joins the employee row with its status record.
type EmployeeWithStatus struct {
	Employee
	StatusLabel     *string
	MaxWeeklyHours  *float64
	MaxMonthlyHours *float64
	MaxYearlyHours  *float64
	IsStudent       bool
}
