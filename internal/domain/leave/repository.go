package leave

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)
	// ListByEmployee orders by start date, latest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// List orders by creation time, newest first, and fills EmployeeName.
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)
	// FindOverlappingApproved returns APPROVED requests of the employee that
	// share at least one day with [start, end].
	FindOverlappingApproved(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)
	// UpdateStatus returns ErrLeaveRequestAlreadyProcessed when the stored
	// status no longer equals update.From.
	UpdateStatus(ctx context.Context, update LeaveStatusUpdate) (LeaveRequest, error)
}
