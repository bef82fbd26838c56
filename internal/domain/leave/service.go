package leave

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock
type LeaveService interface {
	// ApplyLeave always records exactly one request; rule violations are
	// stored as REJECTED rather than returned as errors.
	ApplyLeave(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveRequestResponse, error)
	// ValidateLeave decides a PENDING request on behalf of reviewerID.
	ValidateLeave(ctx context.Context, leaveID string, req ValidateLeaveRequest, reviewerID string) (LeaveRequestResponse, error)
	ListMyLeaves(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	ListAllLeaves(ctx context.Context, filter ListLeaveFilter) ([]LeaveRequestResponse, error)
}
