package response

import (
	"errors"
	"net/http"

	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/auth"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/availability"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/employee"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/leave"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/planning"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/shift"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/site"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/domain/status"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/database"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/otp"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/tenant"
	"github.com/RalstoniaWah/Planning-master-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and verification
	case errors.Is(err, auth.ErrUnknownPhoneNumber):
		NotFound(w, "No active employee with this phone number")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, tenant.ErrMissingTenant):
		Unauthorized(w, "No tenant resolved for this request")
	case errors.Is(err, otp.ErrInvalidCode):
		Unauthorized(w, "Invalid verification code")
	case errors.Is(err, otp.ErrCodeExpired):
		Unauthorized(w, "Verification code expired")
	case errors.Is(err, otp.ErrTooManyAttempts):
		TooManyRequests(w, "Too many verification attempts")
	case errors.Is(err, otp.ErrResendCooldown):
		TooManyRequests(w, "Please wait before requesting another code")
	case errors.Is(err, otp.ErrDeliveryFailed):
		InternalServerError(w, "Failed to deliver verification code")

	// No data backend configured: reads return empty sets upstream,
	// writes surface here.
	case errors.Is(err, database.ErrBackendNotConfigured):
		ServiceUnavailable(w, "No data backend is configured")

	// Employees
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrUnknownStatusCode):
		BadRequest(w, "Unknown employee status code", nil)
	case errors.Is(err, employee.ErrFutureHireDate):
		BadRequest(w, "Hire date cannot be in the future", nil)
	case errors.Is(err, employee.ErrInvalidHourlyRate):
		BadRequest(w, "Hourly rate must be a non-negative number", nil)
	case errors.Is(err, employee.ErrEmployeeArchived):
		Conflict(w, "Employee is archived")

	// Statuses
	case errors.Is(err, status.ErrStatusNotFound):
		NotFound(w, "Employee status not found")
	case errors.Is(err, status.ErrStatusCodeExists):
		Conflict(w, "Status code already exists")

	// Sites
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrSiteCodeExists):
		Conflict(w, "Site code already exists")
	case errors.Is(err, site.ErrSiteInactive):
		Conflict(w, "Site is inactive")

	// Shifts and assignments
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrIllegalStatusTransition):
		Conflict(w, "Illegal shift status transition")
	case errors.Is(err, shift.ErrInvalidStatus):
		Conflict(w, "Shift status does not allow this operation")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, shift.ErrAlreadyAssigned):
		Conflict(w, "Employee is already assigned to this shift")
	case errors.Is(err, shift.ErrShiftNotOpen):
		Conflict(w, "Shift is not open for assignment")

	// Availability
	case errors.Is(err, availability.ErrPatternNotFound):
		NotFound(w, "Availability pattern not found")
	case errors.Is(err, availability.ErrExceptionNotFound):
		NotFound(w, "Availability exception not found")
	case errors.Is(err, availability.ErrExceptionAlreadyApproved):
		Conflict(w, "Exception is already approved")

	// Leave
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An existing leave overlaps this period")

	// Planning
	case errors.Is(err, planning.ErrGenerationNotFound):
		NotFound(w, "Planning generation not found")
	case errors.Is(err, planning.ErrGenerationNotRunning):
		Conflict(w, "Planning generation is not running")
	case errors.Is(err, planning.ErrGenerationNotComplete):
		Conflict(w, "Planning generation has not completed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
