package response

import (
	"errors"
	"net/http"

	"github.com/hydroseal/erp-backend-go/internal/domain/attendance"
	"github.com/hydroseal/erp-backend-go/internal/domain/auth"
	"github.com/hydroseal/erp-backend-go/internal/domain/employee"
	"github.com/hydroseal/erp-backend-go/internal/domain/leave"
	"github.com/hydroseal/erp-backend-go/internal/domain/material"
	"github.com/hydroseal/erp-backend-go/internal/domain/payroll"
	"github.com/hydroseal/erp-backend-go/internal/domain/user"
	"github.com/hydroseal/erp-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrPermissionDenied):
		Forbidden(w, "Permission denied")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance already recorded for this date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)
	case errors.Is(err, payroll.ErrInvalidBasicSalary):
		BadRequest(w, "Basic salary must be non-negative", nil)
	case errors.Is(err, payroll.ErrAlreadyProcessed):
		Conflict(w, "Salary already processed for this month")
	case errors.Is(err, payroll.ErrSalaryEntryNotFound):
		NotFound(w, "Salary history entry not found")
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Material domain errors
	case errors.Is(err, material.ErrMaterialNotFound):
		NotFound(w, "Material not found")
	case errors.Is(err, material.ErrMaterialNameExists):
		Conflict(w, "Material name already exists")
	case errors.Is(err, material.ErrInsufficientStock):
		BadRequest(w, "Insufficient stock for outward movement", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
