package user

import "time"

type Role string

const (
	RoleEmployee Role = "EMPLOYEE" // Applies for leave, sees own data
	RoleHR       Role = "HR"       // Decides leave, manages the directory
	RoleAdmin    Role = "ADMIN"    // Manages the directory
)

func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleHR || r == RoleAdmin
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	IsFirstLogin bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsHR checks if user decides leave requests
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// HasEmployee checks if user is linked to an employee record
func (u *User) HasEmployee() bool {
	return u.EmployeeID != nil && *u.EmployeeID != ""
}
