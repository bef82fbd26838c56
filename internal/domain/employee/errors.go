package employee

import "errors"

var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrEmployeeCodeExists       = errors.New("employee code already exists")
	ErrEmailExists              = errors.New("email already registered")
	ErrInsufficientLeaveBalance = errors.New("insufficient leave balance")
	ErrAccessDenied             = errors.New("not allowed to access this employee")
)
