package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/schoolhub/attendance-backend-go/internal/domain/access"
	"github.com/schoolhub/attendance-backend-go/internal/domain/attendance"
	"github.com/schoolhub/attendance-backend-go/internal/domain/auth"
	"github.com/schoolhub/attendance-backend-go/internal/domain/leave"
	"github.com/schoolhub/attendance-backend-go/internal/domain/policy"
	"github.com/schoolhub/attendance-backend-go/internal/domain/school"
	"github.com/schoolhub/attendance-backend-go/internal/domain/staff"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Punch pacing errors carry the remaining wait in the message
	var tooSoon *attendance.PunchTooSoonError
	if errors.As(err, &tooSoon) {
		UnprocessableEntity(w, tooSoon.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAuthenticationRequired):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrGoogleEmailNotVerified):
		Forbidden(w, "Google account email is not verified")

	// Access domain errors
	case errors.Is(err, access.ErrUnauthorized):
		Forbidden(w, "You do not have permission to perform this action")
	case errors.Is(err, access.ErrCustomRoleNotFound):
		NotFound(w, "Custom role not found")

	// School domain errors
	case errors.Is(err, school.ErrSchoolNotFound):
		NotFound(w, "School not found")
	case errors.Is(err, school.ErrSchoolAccessDenied):
		Forbidden(w, "You do not belong to this school")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffInactive):
		Forbidden(w, "Staff member is inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, "Attendance cannot be recorded for a future date", nil)
	case errors.Is(err, attendance.ErrPunchLimitExceeded):
		UnprocessableEntity(w, "Daily punch limit reached")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Leave end date cannot be before start date", nil)

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Leave policy not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
