package response

import (
	"errors"
	"net/http"

	"github.com/samar-devp/workforce-backend-go/internal/domain/attendance"
	"github.com/samar-devp/workforce-backend-go/internal/domain/auth"
	"github.com/samar-devp/workforce-backend-go/internal/domain/employee"
	"github.com/samar-devp/workforce-backend-go/internal/domain/holiday"
	"github.com/samar-devp/workforce-backend-go/internal/domain/leave"
	"github.com/samar-devp/workforce-backend-go/internal/domain/location"
	"github.com/samar-devp/workforce-backend-go/internal/domain/report"
	"github.com/samar-devp/workforce-backend-go/internal/domain/shift"
	"github.com/samar-devp/workforce-backend-go/internal/domain/user"
	"github.com/samar-devp/workforce-backend-go/internal/domain/weekoff"
	"github.com/samar-devp/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrRefreshTokenRevoked),
		errors.Is(err, auth.ErrMissingRefreshToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrOrganizationAccessRequired),
		errors.Is(err, user.ErrSystemOwnerAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, err.Error())
	case errors.Is(err, employee.ErrMissingProfile),
		errors.Is(err, employee.ErrInvalidJoiningDate):
		BadRequest(w, err.Error(), nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, shift.ErrInvalidShiftWindow):
		BadRequest(w, err.Error(), nil)

	// Week-off and holiday domain errors
	case errors.Is(err, weekoff.ErrPolicyNotFound):
		NotFound(w, "Week-off policy not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists on this date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrApplicationNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrApplicationNotPending):
		Conflict(w, "Leave application already processed")
	case errors.Is(err, leave.ErrOverlappingApplication):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Location domain errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, location.ErrOutsideAllowedRadius):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrInvalidCheckOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Report domain errors
	case errors.Is(err, report.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, report.ErrMissingProfile):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrInvalidTemporalInput),
		errors.Is(err, report.ErrInvalidScope):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
