package employee

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock
type EmployeeService interface {
	// CreateEmployee stores the employee together with its login account
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee applies only the fields present in req
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee, its leave requests and its user
	DeleteEmployee(ctx context.Context, id string) error

	GetLeaveBalance(ctx context.Context, id string) (LeaveBalanceResponse, error)
}
