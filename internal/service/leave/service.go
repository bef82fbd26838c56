package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/leave"
	"github.com/symplora/lms-backend-go/internal/pkg/database"
	"github.com/symplora/lms-backend-go/internal/pkg/events"
	"github.com/symplora/lms-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	tx database.Transactor
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	publisher events.Publisher
	now       func() time.Time
}

func NewLeaveService(tx database.Transactor, leaveRequestRepository leave.LeaveRequestRepository, employeeRepository employee.EmployeeRepository, publisher events.Publisher) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                     tx,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		publisher:              publisher,
		now:                    time.Now,
	}
}

// ApplyLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ApplyLeave(ctx context.Context, employeeID string, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	start, end := req.Dates()
	start, end = leave.NormalizeDate(start), leave.NormalizeDate(end)

	var created leave.LeaveRequest
	err := l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := l.EmployeeRepository.GetByID(ctx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		status, rejectionReason, err := l.decide(ctx, emp, start, end)
		if err != nil {
			return err
		}

		created, err = l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
			EmployeeID:      emp.ID,
			StartDate:       start,
			EndDate:         end,
			Reason:          req.Reason,
			Status:          status,
			RejectionReason: rejectionReason,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request recorded",
		"leave_id", created.ID,
		"employee_id", created.EmployeeID,
		"status", created.Status,
	)
	events.PublishLogged(ctx, l.publisher, events.Event{
		Type:       events.TypeLeaveApplied,
		Key:        created.EmployeeID,
		OccurredAt: l.now().UTC(),
		Payload: events.LeaveApplied{
			LeaveID:         created.ID,
			EmployeeID:      created.EmployeeID,
			Status:          string(created.Status),
			RejectionReason: created.RejectionReason,
			StartDate:       created.StartDate.Format(validator.DateLayout),
			EndDate:         created.EndDate.Format(validator.DateLayout),
			Days:            max(created.Days(), 0),
		},
	})

	return leave.NewLeaveRequestResponse(created), nil
}

// decide runs the submission rules in order; the first failing rule wins.
func (l *LeaveServiceImpl) decide(ctx context.Context, emp employee.Employee, start, end time.Time) (leave.LeaveStatus, *string, error) {
	if start.After(end) {
		return rejectedWith(leave.ReasonStartAfterEnd)
	}
	if start.Before(leave.NormalizeDate(emp.JoiningDate)) {
		return rejectedWith(leave.ReasonBeforeJoiningDate)
	}
	if !emp.HasBalanceFor(leave.InclusiveDays(start, end)) {
		return rejectedWith(leave.ReasonInsufficientBalance)
	}

	overlapping, err := l.LeaveRequestRepository.FindOverlappingApproved(ctx, emp.ID, start, end)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check overlapping leave requests: %w", err)
	}
	if len(overlapping) > 0 {
		return rejectedWith(leave.ReasonOverlapsApproved)
	}

	return leave.StatusPending, nil, nil
}

func rejectedWith(reason string) (leave.LeaveStatus, *string, error) {
	return leave.StatusRejected, &reason, nil
}

// ValidateLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ValidateLeave(ctx context.Context, leaveID string, req leave.ValidateLeaveRequest, reviewerID string) (leave.LeaveRequestResponse, error) {
	var (
		action    leave.LeaveStatus
		updated   leave.LeaveRequest
		remaining *int
	)
	err := l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := l.LeaveRequestRepository.GetByIDForUpdate(ctx, leaveID)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}

		// The request must exist before the action is looked at.
		if err := req.Validate(); err != nil {
			return err
		}
		action = leave.LeaveStatus(req.Action)
		if action != leave.StatusApproved && action != leave.StatusRejected {
			return leave.ErrInvalidAction
		}
		if request.Status != leave.StatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		update := leave.LeaveStatusUpdate{
			ID:         request.ID,
			From:       leave.StatusPending,
			To:         action,
			ReviewedBy: reviewerID,
			ReviewedAt: l.now().UTC(),
		}

		if action == leave.StatusApproved {
			balance, err := l.deduct(ctx, request)
			switch {
			case errors.Is(err, employee.ErrInsufficientLeaveBalance):
				reason := leave.ReasonInsufficientApproval
				update.To = leave.StatusRejected
				update.RejectionReason = &reason
			case err != nil:
				return err
			default:
				remaining = &balance
			}
		}

		updated, err = l.LeaveRequestRepository.UpdateStatus(ctx, update)
		if err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("leave request validated",
		"leave_id", updated.ID,
		"action", action,
		"status", updated.Status,
		"reviewed_by", reviewerID,
	)
	events.PublishLogged(ctx, l.publisher, events.Event{
		Type:       events.TypeLeaveValidated,
		Key:        updated.EmployeeID,
		OccurredAt: l.now().UTC(),
		Payload: events.LeaveValidated{
			LeaveID:          updated.ID,
			EmployeeID:       updated.EmployeeID,
			Action:           string(action),
			Status:           string(updated.Status),
			RejectionReason:  updated.RejectionReason,
			ReviewedBy:       reviewerID,
			RemainingBalance: remaining,
		},
	})

	return leave.NewLeaveRequestResponse(updated), nil
}

// deduct locks the owner and takes the request's days off its balance. It
// returns employee.ErrInsufficientLeaveBalance when the balance no longer
// covers them, whether seen on the locked read or by the conditional update.
func (l *LeaveServiceImpl) deduct(ctx context.Context, request leave.LeaveRequest) (int, error) {
	emp, err := l.EmployeeRepository.GetByIDForUpdate(ctx, request.EmployeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to get employee: %w", err)
	}

	days := request.Days()
	if !emp.HasBalanceFor(days) {
		return 0, employee.ErrInsufficientLeaveBalance
	}

	updated, err := l.EmployeeRepository.DeductLeaveBalance(ctx, emp.ID, days, request.EndDate)
	if err != nil {
		if errors.Is(err, employee.ErrInsufficientLeaveBalance) {
			slog.Warn("leave balance changed after it was read",
				"employee_id", emp.ID,
				"leave_id", request.ID,
				"days", days,
			)
			return 0, err
		}
		return 0, fmt.Errorf("failed to deduct leave balance: %w", err)
	}
	return updated.LeaveBalance, nil
}

// ListMyLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyLeaves(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	if _, err := l.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.NewLeaveRequestResponses(requests), nil
}

// ListAllLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) ListAllLeaves(ctx context.Context, filter leave.ListLeaveFilter) ([]leave.LeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.List(ctx, filter.ToLeaveFilter())
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.NewLeaveRequestResponses(requests), nil
}
