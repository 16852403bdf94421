package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              string
	TenantID        string
	EmployeeNumber  string
	FirstName       string
	LastName        string
	Email           *string
	PhoneNumber     string
	BirthDate       *time.Time
	StatusCode      string
	ContractType    ContractType
	HourlyRate      *decimal.Decimal
	WeeklyHours     float64
	MonthlyHours    float64
	Color           string
	Lifecycle       Lifecycle
	Languages       []string
	ExperienceLevel ExperienceLevel
	HireDate        time.Time
	AnnualLeaveDays float64
	SickLeaveDays   float64
	CurrentYear     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ArchivedAt      *time.Time
}

type ContractType string

const (
	ContractTypePermanent ContractType = "permanent"
	ContractTypeFixedTerm ContractType = "fixed_term"
	ContractTypeStudent   ContractType = "student"
	ContractTypeInterim   ContractType = "interim"
)

var ContractTypeValues = []string{
	string(ContractTypePermanent),
	string(ContractTypeFixedTerm),
	string(ContractTypeStudent),
	string(ContractTypeInterim),
}

// Lifecycle is the explicit two-state archive model. Archiving is
// reversible through Restore; an ARCHIVED employee never appears in
// roster or scheduling queries.
type Lifecycle string

const (
	LifecycleActive   Lifecycle = "ACTIVE"
	LifecycleArchived Lifecycle = "ARCHIVED"
)

type ExperienceLevel string

const (
	ExperienceLevelJunior       ExperienceLevel = "junior"
	ExperienceLevelIntermediate ExperienceLevel = "intermediate"
	ExperienceLevelSenior       ExperienceLevel = "senior"
)

var ExperienceLevelValues = []string{
	string(ExperienceLevelJunior),
	string(ExperienceLevelIntermediate),
	string(ExperienceLevelSenior),
}

// IsActive reports whether the employee is eligible for scheduling.
func (e Employee) IsActive() bool {
	return e.Lifecycle == LifecycleActive
}
