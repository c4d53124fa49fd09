package response

import (
	"errors"
	"net/http"

	"github.com/talentra-hq/hrms-backend-go/internal/domain/attendance"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/auth"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/candidate"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/employee"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/holiday"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/job"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/leave"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/notification"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/payroll"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/settings"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/user"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmployeeNotLinked):
		DomainError(w, http.StatusForbidden, "EMPLOYEE_NOT_LINKED", "No employee record is linked to this account")
	case errors.Is(err, auth.ErrInvalidResetCode):
		DomainError(w, http.StatusBadRequest, "INVALID_RESET_CODE", "Invalid reset code")
	case errors.Is(err, auth.ErrResetCodeExpired):
		DomainError(w, http.StatusBadRequest, "RESET_CODE_EXPIRED", "Reset code expired")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		DomainError(w, http.StatusConflict, "ALREADY_CHECKED_IN", "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		DomainError(w, http.StatusBadRequest, "NOT_CHECKED_IN", "No check-in found for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		DomainError(w, http.StatusBadRequest, "ALREADY_CHECKED_OUT", "Already checked out today")
	case errors.Is(err, attendance.ErrAlreadyOnBreak):
		DomainError(w, http.StatusBadRequest, "ALREADY_ON_BREAK", "A break is already running")
	case errors.Is(err, attendance.ErrNotOnBreak):
		DomainError(w, http.StatusBadRequest, "NOT_ON_BREAK", "No break is running")
	case errors.Is(err, attendance.ErrNoPendingCheckout):
		DomainError(w, http.StatusNotFound, "NO_PENDING_CHECKOUT", "No pending checkout for that day")
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		DomainError(w, http.StatusBadRequest, "CHECKOUT_BEFORE_CHECKIN", "Check-out time cannot be before check-in")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Settings domain errors
	case errors.Is(err, settings.ErrInvalidTimeFormat):
		DomainError(w, http.StatusBadRequest, "INVALID_TIME_FORMAT", "Times must be H:MM or HH:MM")
	case errors.Is(err, settings.ErrMissingTimes):
		BadRequest(w, "Both startTime and endTime are required", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrCodeExists):
		Conflict(w, "Employee code already exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "The to date must not be before the from date", nil)

	// Remaining lookups
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, candidate.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
