package employee

import (
	"strings"
	"time"

	"github.com/symplora/lms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Email        string `json:"email" validate:"required,email,max=254"`
	EmployeeCode string `json:"employee_code" validate:"required,max=50"`
	Department   string `json:"department" validate:"required,max=100"`
	JoiningDate  string `json:"joining_date" validate:"required,date"`
	LeaveBalance *int   `json:"leave_balance,omitempty" validate:"omitempty,gte=0"`
}

func (r *CreateEmployeeRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	r.Department = strings.TrimSpace(r.Department)
	return validator.Struct(r)
}

type UpdateEmployeeRequest struct {
	ID                 string  `json:"-"`
	Name               *string `json:"name,omitempty"`
	Email              *string `json:"email,omitempty"`
	Department         *string `json:"department,omitempty"`
	JoiningDate        *string `json:"joining_date,omitempty"`
	LeaveBalance       *int    `json:"leave_balance,omitempty"`
	LastTakenLeaveDate *string `json:"last_taken_leave_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
		if !validator.IsValidEmail(email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must be a valid email address",
			})
		}
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must be a date in YYYY-MM-DD format",
			})
		}
	}

	if r.LeaveBalance != nil && *r.LeaveBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_balance",
			Message: "leave_balance must be greater than or equal to 0",
		})
	}

	if r.LastTakenLeaveDate != nil {
		if _, ok := validator.IsValidDate(*r.LastTakenLeaveDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "last_taken_leave_date",
				Message: "last_taken_leave_date must be a date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply copies the fields present in r onto e. Dates must already be valid.
func (r UpdateEmployeeRequest) Apply(e *Employee) {
	if r.Name != nil {
		e.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
	if r.Department != nil {
		e.Department = strings.TrimSpace(*r.Department)
	}
	if r.JoiningDate != nil {
		d, _ := validator.IsValidDate(*r.JoiningDate)
		e.JoiningDate = d
	}
	if r.LeaveBalance != nil {
		e.LeaveBalance = *r.LeaveBalance
	}
	if r.LastTakenLeaveDate != nil {
		d, _ := validator.IsValidDate(*r.LastTakenLeaveDate)
		e.LastTakenLeaveDate = &d
	}
}

type EmployeeResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	EmployeeCode       string    `json:"employee_code"`
	Department         string    `json:"department"`
	JoiningDate        string    `json:"joining_date"`
	LeaveBalance       int       `json:"leave_balance"`
	LastTakenLeaveDate *string   `json:"last_taken_leave_date"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		EmployeeCode: e.EmployeeCode,
		Department:   e.Department,
		JoiningDate:  e.JoiningDate.Format(validator.DateLayout),
		LeaveBalance: e.LeaveBalance,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.LastTakenLeaveDate != nil {
		d := e.LastTakenLeaveDate.Format(validator.DateLayout)
		resp.LastTakenLeaveDate = &d
	}
	return resp
}

type CreateEmployeeResponse struct {
	Employee EmployeeResponse `json:"employee"`
	UserID   string           `json:"user_id"`
	// TemporaryPassword is only returned when no welcome email could be sent.
	TemporaryPassword string `json:"temporary_password,omitempty"`
}

type LeaveBalanceResponse struct {
	EmployeeID         string  `json:"employee_id"`
	LeaveBalance       int     `json:"leave_balance"`
	LastTakenLeaveDate *string `json:"last_taken_leave_date"`
}
