package employee

import "time"

// DefaultLeaveBalance is granted to new employees when HR does not set one.
const DefaultLeaveBalance = 44

type Employee struct {
	ID                 string
	Name               string
	Email              string
	EmployeeCode       string
	Department         string
	JoiningDate        time.Time
	LeaveBalance       int
	LastTakenLeaveDate *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasBalanceFor reports whether the employee can still take days of leave.
func (e Employee) HasBalanceFor(days int) bool {
	return days <= e.LeaveBalance
}
