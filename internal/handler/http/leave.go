package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/symplora/lms-backend-go/internal/domain/auth"
	"github.com/symplora/lms-backend-go/internal/domain/leave"
	"github.com/symplora/lms-backend-go/internal/handler/http/middleware"
	"github.com/symplora/lms-backend-go/internal/handler/http/response"
	"github.com/symplora/lms-backend-go/internal/pkg/jwt"
	"github.com/symplora/lms-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	ApplyLeave(w http.ResponseWriter, r *http.Request)
	ListMyLeaves(w http.ResponseWriter, r *http.Request)
	ValidateLeave(w http.ResponseWriter, r *http.Request)
	ListAllLeaves(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// employeeClaims returns the caller's identity when it is linked to an
// employee profile.
func employeeClaims(r *http.Request) (jwt.Claims, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return jwt.Claims{}, auth.ErrInvalidToken
	}
	if !claims.HasEmployee() {
		return jwt.Claims{}, leave.ErrEmployeeProfileRequired
	}
	return claims, nil
}

// ApplyLeave implements LeaveHandler.
func (h *leaveHandlerImpl) ApplyLeave(w http.ResponseWriter, r *http.Request) {
	claims, err := employeeClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ApplyLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.ApplyLeave(r.Context(), *claims.EmployeeID, req)
	if err != nil {
		slog.Error("ApplyLeave service error", "employee_id", *claims.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	message := "Leave request submitted"
	if result.Status == leave.StatusRejected {
		message = "Leave request rejected"
	}
	response.Created(w, message, result)
}

// ListMyLeaves implements LeaveHandler.
func (h *leaveHandlerImpl) ListMyLeaves(w http.ResponseWriter, r *http.Request) {
	claims, err := employeeClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaves, err := h.leaveService.ListMyLeaves(r.Context(), *claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// ValidateLeave implements LeaveHandler.
func (h *leaveHandlerImpl) ValidateLeave(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.HandleError(w, leave.ErrLeaveRequestNotFound)
		return
	}

	var req leave.ValidateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ValidateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.ValidateLeave(r.Context(), id, req, claims.UserID)
	if err != nil {
		slog.Error("ValidateLeave service error", "leave_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+string(result.Status), result)
}

// ListAllLeaves implements LeaveHandler.
func (h *leaveHandlerImpl) ListAllLeaves(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := leave.ListLeaveFilter{
		Status:     query.Get("status"),
		EmployeeID: query.Get("employee_id"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	leaves, err := h.leaveService.ListAllLeaves(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}
