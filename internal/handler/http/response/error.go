package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/symplora/lms-backend-go/internal/domain/auth"
	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/leave"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/pkg/database"
	"github.com/symplora/lms-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrIncorrectPassword):
		Unauthorized(w, "Current password is incorrect")
	case errors.Is(err, auth.ErrSamePassword):
		BadRequest(w, "New password must differ from the current password", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInsufficientPrivilege):
		Forbidden(w, "Insufficient privilege")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrAccessDenied):
		Forbidden(w, "Not allowed to access this employee")
	case errors.Is(err, employee.ErrInsufficientLeaveBalance):
		Conflict(w, "Insufficient leave balance")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidAction):
		BadRequest(w, "Action must be APPROVED or REJECTED", nil)
	case errors.Is(err, leave.ErrEmployeeProfileRequired):
		Forbidden(w, "An employee profile is required")

	// Constraint violations no repository mapped
	case errors.Is(err, database.ErrDuplicateKey):
		Conflict(w, "Record already exists")
	case errors.Is(err, database.ErrReference):
		NotFound(w, "Referenced record not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
