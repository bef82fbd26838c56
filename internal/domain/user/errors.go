package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserEmailExists       = errors.New("email already registered")
	ErrInvalidRole           = errors.New("role must be EMPLOYEE, HR or ADMIN")
	ErrInsufficientPrivilege = errors.New("insufficient permissions")
)
