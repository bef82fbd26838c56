package leave

import (
	"strings"
	"time"

	"github.com/symplora/lms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	StartDate string `json:"start_date" validate:"required,date"`
	EndDate   string `json:"end_date" validate:"required,date"`
	Reason    string `json:"reason" validate:"required,max=1000"`
}

func (r *ApplyLeaveRequest) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	return validator.Struct(r)
}

// Dates returns the parsed range. Call only after Validate succeeded.
func (r ApplyLeaveRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

// ValidateLeaveRequest carries the HR decision. The action is checked only
// after the request is found, so an unknown id is always NotFound.
type ValidateLeaveRequest struct {
	Action string `json:"action"`
}

func (r *ValidateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Action = strings.ToUpper(strings.TrimSpace(r.Action))
	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListLeaveFilter struct {
	Status     string
	EmployeeID string
}

func (f *ListLeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	f.Status = strings.ToUpper(strings.TrimSpace(f.Status))
	if f.Status != "" && !LeaveStatus(f.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PENDING, APPROVED, REJECTED",
		})
	}
	if f.EmployeeID != "" && !validator.IsValidUUID(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToLeaveFilter converts the query values into a repository filter.
func (f ListLeaveFilter) ToLeaveFilter() LeaveFilter {
	var filter LeaveFilter
	if f.Status != "" {
		status := LeaveStatus(f.Status)
		filter.Status = &status
	}
	if f.EmployeeID != "" {
		id := f.EmployeeID
		filter.EmployeeID = &id
	}
	return filter
}

type LeaveRequestResponse struct {
	ID              string      `json:"id"`
	EmployeeID      string      `json:"employee_id"`
	EmployeeName    *string     `json:"employee_name,omitempty"`
	StartDate       string      `json:"start_date"`
	EndDate         string      `json:"end_date"`
	Days            int         `json:"days"`
	Reason          string      `json:"reason"`
	Status          LeaveStatus `json:"status"`
	RejectionReason *string     `json:"rejection_reason"`
	ReviewedBy      *string     `json:"reviewed_by"`
	ReviewedAt      *time.Time  `json:"reviewed_at"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	days := r.Days()
	if days < 0 {
		days = 0
	}
	return LeaveRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		StartDate:       r.StartDate.Format(validator.DateLayout),
		EndDate:         r.EndDate.Format(validator.DateLayout),
		Days:            days,
		Reason:          r.Reason,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewLeaveRequestResponse(r))
	}
	return out
}
