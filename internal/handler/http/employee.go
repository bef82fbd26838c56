package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/symplora/lms-backend-go/internal/domain/auth"
	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/handler/http/middleware"
	"github.com/symplora/lms-backend-go/internal/handler/http/response"
	"github.com/symplora/lms-backend-go/internal/pkg/rbac"
	"github.com/symplora/lms-backend-go/internal/pkg/validator"
)

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	GetLeaveBalance(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	authorizer      rbac.Authorizer
}

func NewEmployeeHandler(employeeService employee.EmployeeService, authorizer rbac.Authorizer) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		authorizer:      authorizer,
	}
}

// employeeID reads {id}. A malformed id cannot name an employee, so it is
// answered as not found.
func employeeID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return "", false
	}
	return id, true
}

// authorizeRead allows roles that may read every employee, and otherwise
// only the employee's own record.
func (e *employeeHandlerImpl) authorizeRead(r *http.Request, id string) error {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return auth.ErrInvalidToken
	}

	canReadAll, err := e.authorizer.Can(claims.Role, user.PermissionEmployeeReadAll)
	if err != nil {
		return err
	}
	if canReadAll {
		return nil
	}
	if claims.HasEmployee() && *claims.EmployeeID == id {
		return nil
	}
	return employee.ErrAccessDenied
}

// CreateEmployee implements EmployeeHandler.
func (e *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := e.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// ListEmployees implements EmployeeHandler.
func (e *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := e.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// GetEmployee implements EmployeeHandler.
func (e *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	if err := e.authorizeRead(r, id); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := e.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// UpdateEmployee implements EmployeeHandler.
func (e *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := e.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// DeleteEmployee implements EmployeeHandler.
func (e *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	if err := e.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		slog.Error("DeleteEmployee service error", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// GetLeaveBalance implements EmployeeHandler.
func (e *employeeHandlerImpl) GetLeaveBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(w, r)
	if !ok {
		return
	}

	if err := e.authorizeRead(r, id); err != nil {
		response.HandleError(w, err)
		return
	}

	balance, err := e.employeeService.GetLeaveBalance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}
