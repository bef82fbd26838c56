package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	employeemock "github.com/symplora/lms-backend-go/internal/domain/employee/mock"
	"github.com/symplora/lms-backend-go/internal/domain/leave"
	leavemock "github.com/symplora/lms-backend-go/internal/domain/leave/mock"
	"github.com/symplora/lms-backend-go/internal/pkg/events"
	"github.com/symplora/lms-backend-go/internal/pkg/validator"
)

const (
	employeeID = "0192a1b2-0000-7000-8000-000000000001"
	leaveID    = "0192a1b2-0000-7000-8000-0000000000aa"
	reviewerID = "0192a1b2-0000-7000-8000-0000000000ff"
)

var fixedNow = time.Date(2025, 1, 5, 9, 30, 0, 0, time.UTC)

type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type recordingPublisher struct {
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

type fixture struct {
	service   *LeaveServiceImpl
	leaves    *leavemock.MockLeaveRequestRepository
	employees *employeemock.MockEmployeeRepository
	tx        *fakeTransactor
	publisher *recordingPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		leaves:    leavemock.NewMockLeaveRequestRepository(ctrl),
		employees: employeemock.NewMockEmployeeRepository(ctrl),
		tx:        &fakeTransactor{},
		publisher: &recordingPublisher{},
	}
	f.service = NewLeaveService(f.tx, f.leaves, f.employees, f.publisher).(*LeaveServiceImpl)
	f.service.now = func() time.Time { return fixedNow }
	return f
}

func date(s string) time.Time {
	d, ok := validator.IsValidDate(s)
	if !ok {
		panic("bad date " + s)
	}
	return d
}

func testEmployee(balance int) employee.Employee {
	return employee.Employee{
		ID:           employeeID,
		Name:         "Ayu",
		Email:        "ayu@example.com",
		EmployeeCode: "EMP-001",
		Department:   "Engineering",
		JoiningDate:  date("2024-01-01"),
		LeaveBalance: balance,
	}
}

// storeCreated echoes the request back the way the repository would.
func storeCreated(_ context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.ID = leaveID
	r.CreatedAt = fixedNow
	r.UpdatedAt = fixedNow
	return r, nil
}

func pendingRequest(start, end string) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         leaveID,
		EmployeeID: employeeID,
		StartDate:  date(start),
		EndDate:    date(end),
		Reason:     "family trip",
		Status:     leave.StatusPending,
	}
}

// applyStatus mimics the conditional status update.
func applyStatus(req leave.LeaveRequest) func(context.Context, leave.LeaveStatusUpdate) (leave.LeaveRequest, error) {
	return func(_ context.Context, u leave.LeaveStatusUpdate) (leave.LeaveRequest, error) {
		if req.Status != u.From {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
		}
		req.Status = u.To
		req.RejectionReason = u.RejectionReason
		reviewer := u.ReviewedBy
		at := u.ReviewedAt
		req.ReviewedBy = &reviewer
		req.ReviewedAt = &at
		return req, nil
	}
}

func TestApplyLeave_Pending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(testEmployee(10), nil)
	f.leaves.EXPECT().
		FindOverlappingApproved(gomock.Any(), employeeID, date("2025-01-10"), date("2025-01-12")).
		Return(nil, nil)
	f.leaves.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(storeCreated)

	resp, err := f.service.ApplyLeave(ctx, employeeID, leave.ApplyLeaveRequest{
		StartDate: "2025-01-10",
		EndDate:   "2025-01-12",
		Reason:    "  family trip  ",
	})
	require.NoError(t, err)

	assert.Equal(t, leaveID, resp.ID)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Nil(t, resp.RejectionReason)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, "family trip", resp.Reason)
	assert.Equal(t, 1, f.tx.calls)

	require.Len(t, f.publisher.events, 1)
	ev := f.publisher.events[0]
	assert.Equal(t, events.TypeLeaveApplied, ev.Type)
	assert.Equal(t, employeeID, ev.Key)
	payload, ok := ev.Payload.(events.LeaveApplied)
	require.True(t, ok)
	assert.Equal(t, "PENDING", payload.Status)
	assert.Equal(t, 3, payload.Days)
}

func TestApplyLeave_RejectionRules(t *testing.T) {
	overlapping := []leave.LeaveRequest{pendingRequest("2025-01-11", "2025-01-11")}

	tests := []struct {
		name       string
		start, end string
		balance    int
		overlaps   []leave.LeaveRequest
		checksDB   bool
		wantReason string
	}{
		{
			name:       "start after end",
			start:      "2025-01-12",
			end:        "2025-01-10",
			balance:    10,
			wantReason: leave.ReasonStartAfterEnd,
		},
		{
			name:       "start after end wins over joining date",
			start:      "2023-06-10",
			end:        "2023-06-01",
			balance:    10,
			wantReason: leave.ReasonStartAfterEnd,
		},
		{
			name:       "before joining date",
			start:      "2023-12-31",
			end:        "2024-01-02",
			balance:    10,
			wantReason: leave.ReasonBeforeJoiningDate,
		},
		{
			name:       "joining date wins over balance",
			start:      "2023-12-01",
			end:        "2023-12-31",
			balance:    1,
			wantReason: leave.ReasonBeforeJoiningDate,
		},
		{
			name:       "insufficient balance",
			start:      "2025-01-01",
			end:        "2025-01-11",
			balance:    10,
			wantReason: leave.ReasonInsufficientBalance,
		},
		{
			name:       "overlaps approved leave",
			start:      "2025-01-10",
			end:        "2025-01-12",
			balance:    10,
			overlaps:   overlapping,
			checksDB:   true,
			wantReason: leave.ReasonOverlapsApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(testEmployee(tt.balance), nil)
			if tt.checksDB {
				f.leaves.EXPECT().
					FindOverlappingApproved(gomock.Any(), employeeID, date(tt.start), date(tt.end)).
					Return(tt.overlaps, nil)
			}
			var stored leave.LeaveRequest
			f.leaves.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
					stored = r
					return storeCreated(ctx, r)
				})

			resp, err := f.service.ApplyLeave(context.Background(), employeeID, leave.ApplyLeaveRequest{
				StartDate: tt.start,
				EndDate:   tt.end,
				Reason:    "holiday",
			})
			require.NoError(t, err)

			assert.Equal(t, leave.StatusRejected, stored.Status)
			require.NotNil(t, stored.RejectionReason)
			assert.Equal(t, tt.wantReason, *stored.RejectionReason)
			assert.Equal(t, leave.StatusRejected, resp.Status)
			assert.GreaterOrEqual(t, resp.Days, 0)
			require.Len(t, f.publisher.events, 1)
		})
	}
}

func TestApplyLeave_ExactBalanceIsPending(t *testing.T) {
	f := newFixture(t)

	f.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(testEmployee(3), nil)
	f.leaves.EXPECT().FindOverlappingApproved(gomock.Any(), employeeID, gomock.Any(), gomock.Any()).Return(nil, nil)
	f.leaves.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(storeCreated)

	resp, err := f.service.ApplyLeave(context.Background(), employeeID, leave.ApplyLeaveRequest{
		StartDate: "2025-02-01",
		EndDate:   "2025-02-03",
		Reason:    "rest",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
}

func TestApplyLeave_JoiningDayIsAllowed(t *testing.T) {
	f := newFixture(t)

	f.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(testEmployee(10), nil)
	f.leaves.EXPECT().FindOverlappingApproved(gomock.Any(), employeeID, gomock.Any(), gomock.Any()).Return(nil, nil)
	f.leaves.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(storeCreated)

	resp, err := f.service.ApplyLeave(context.Background(), employeeID, leave.ApplyLeaveRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-01",
		Reason:    "first day",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, 1, resp.Days)
}

func TestApplyLeave_EmployeeNotFound(t *testing.T) {
	f := newFixture(t)

	f.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(employee.Employee{}, employee.ErrEmployeeNotFound)

	_, err := f.service.ApplyLeave(context.Background(), employeeID, leave.ApplyLeaveRequest{
		StartDate: "2025-01-10",
		EndDate:   "2025-01-12",
		Reason:    "holiday",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, f.publisher.events)
}

func TestApplyLeave_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		req   leave.ApplyLeaveRequest
		field string
	}{
		{"missing start", leave.ApplyLeaveRequest{EndDate: "2025-01-10", Reason: "x"}, "start_date"},
		{"bad end format", leave.ApplyLeaveRequest{StartDate: "2025-01-10", EndDate: "10/01/2025", Reason: "x"}, "end_date"},
		{"blank reason", leave.ApplyLeaveRequest{StartDate: "2025-01-10", EndDate: "2025-01-10", Reason: "   "}, "reason"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.service.ApplyLeave(context.Background(), employeeID, tt.req)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
			assert.Zero(t, f.tx.calls)
		})
	}
}

func TestApplyLeave_RepositoryFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("connection reset")

	f.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(testEmployee(10), nil)
	f.leaves.EXPECT().FindOverlappingApproved(gomock.Any(), employeeID, gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := f.service.ApplyLeave(context.Background(), employeeID, leave.ApplyLeaveRequest{
		StartDate: "2025-01-10",
		EndDate:   "2025-01-12",
		Reason:    "holiday",
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.publisher.events)
}

func TestApplyLeave_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("broker unavailable")

	f.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(testEmployee(10), nil)
	f.leaves.EXPECT().FindOverlappingApproved(gomock.Any(), employeeID, gomock.Any(), gomock.Any()).Return(nil, nil)
	f.leaves.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(storeCreated)

	resp, err := f.service.ApplyLeave(context.Background(), employeeID, leave.ApplyLeaveRequest{
		StartDate: "2025-01-10",
		EndDate:   "2025-01-12",
		Reason:    "holiday",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
}

func TestValidateLeave_Approve(t *testing.T) {
	f := newFixture(t)
	req := pendingRequest("2025-01-10", "2025-01-12")

	f.leaves.EXPECT().GetByIDForUpdate(gomock.Any(), leaveID).Return(req, nil)
	f.employees.EXPECT().GetByIDForUpdate(gomock.Any(), employeeID).Return(testEmployee(10), nil)
	after := testEmployee(7)
	f.employees.EXPECT().DeductLeaveBalance(gomock.Any(), employeeID, 3, date("2025-01-12")).Return(after, nil)
	f.leaves.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u leave.LeaveStatusUpdate) (leave.LeaveRequest, error) {
			assert.Equal(t, leave.StatusPending, u.From)
			assert.Equal(t, leave.StatusApproved, u.To)
			assert.Nil(t, u.RejectionReason)
			assert.Equal(t, reviewerID, u.ReviewedBy)
			assert.Equal(t, fixedNow, u.ReviewedAt)
			return applyStatus(req)(ctx, u)
		})

	resp, err := f.service.ValidateLeave(context.Background(), leaveID, leave.ValidateLeaveRequest{Action: " approved "}, reviewerID)
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, resp.Status)
	require.NotNil(t, resp.ReviewedBy)
	assert.Equal(t, reviewerID, *resp.ReviewedBy)
	assert.Equal(t, 1, f.tx.calls)

	require.Len(t, f.publisher.events, 1)
	payload, ok := f.publisher.events[0].Payload.(events.LeaveValidated)
	require.True(t, ok)
	assert.Equal(t, "APPROVED", payload.Action)
	assert.Equal(t, "APPROVED", payload.Status)
	require.NotNil(t, payload.RemainingBalance)
	assert.Equal(t, 7, *payload.RemainingBalance)
}

func TestValidateLeave_ApproveWithInsufficientBalanceRejects(t *testing.T) {
	f := newFixture(t)
	req := pendingRequest("2025-01-10", "2025-01-12")

	f.leaves.EXPECT().GetByIDForUpdate(gomock.Any(), leaveID).Return(req, nil)
	f.employees.EXPECT().GetByIDForUpdate(gomock.Any(), employeeID).Return(testEmployee(2), nil)
	f.leaves.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(applyStatus(req))

	resp, err := f.service.ValidateLeave(context.Background(), leaveID, leave.ValidateLeaveRequest{Action: "APPROVED"}, reviewerID)
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, leave.ReasonInsufficientApproval, *resp.RejectionReason)

	payload := f.publisher.events[0].Payload.(events.LeaveValidated)
	assert.Equal(t, "APPROVED", payload.Action)
	assert.Equal(t, "REJECTED", payload.Status)
	assert.Nil(t, payload.RemainingBalance)
}

func TestValidateLeave_BalanceDrainedConcurrentlyRejects(t *testing.T) {
	f := newFixture(t)
	req := pendingRequest("2025-01-10", "2025-01-12")

	f.leaves.EXPECT().GetByIDForUpdate(gomock.Any(), leaveID).Return(req, nil)
	f.employees.EXPECT().GetByIDForUpdate(gomock.Any(), employeeID).Return(testEmployee(10), nil)
	f.employees.EXPECT().DeductLeaveBalance(gomock.Any(), employeeID, 3, gomock.Any()).
		Return(employee.Employee{}, employee.ErrInsufficientLeaveBalance)
	f.leaves.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(applyStatus(req))

	resp, err := f.service.ValidateLeave(context.Background(), leaveID, leave.ValidateLeaveRequest{Action: "APPROVED"}, reviewerID)
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, leave.ReasonInsufficientApproval, *resp.RejectionReason)
}

func TestValidateLeave_Reject(t *testing.T) {
	f := newFixture(t)
	req := pendingRequest("2025-01-10", "2025-01-12")

	f.leaves.EXPECT().GetByIDForUpdate(gomock.Any(), leaveID).Return(req, nil)
	f.leaves.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(applyStatus(req))

	resp, err := f.service.ValidateLeave(context.Background(), leaveID, leave.ValidateLeaveRequest{Action: "rejected"}, reviewerID)
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, resp.Status)
	assert.Nil(t, resp.RejectionReason)
}

func TestValidateLeave_Errors(t *testing.T) {
	processed := pendingRequest("2025-01-10", "2025-01-12")
	processed.Status = leave.StatusApproved

	tests := []struct {
		name    string
		action  string
		found   leave.LeaveRequest
		findErr error
		wantErr error
	}{
		{
			name:    "unknown request",
			action:  "APPROVED",
			findErr: leave.ErrLeaveRequestNotFound,
			wantErr: leave.ErrLeaveRequestNotFound,
		},
		{
			name:    "unknown request with invalid action",
			action:  "MAYBE",
			findErr: leave.ErrLeaveRequestNotFound,
			wantErr: leave.ErrLeaveRequestNotFound,
		},
		{
			name:    "invalid action",
			action:  "MAYBE",
			found:   pendingRequest("2025-01-10", "2025-01-12"),
			wantErr: leave.ErrInvalidAction,
		},
		{
			name:    "pending is not a decision",
			action:  "PENDING",
			found:   pendingRequest("2025-01-10", "2025-01-12"),
			wantErr: leave.ErrInvalidAction,
		},
		{
			name:    "already processed",
			action:  "REJECTED",
			found:   processed,
			wantErr: leave.ErrLeaveRequestAlreadyProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.leaves.EXPECT().GetByIDForUpdate(gomock.Any(), leaveID).Return(tt.found, tt.findErr)

			_, err := f.service.ValidateLeave(context.Background(), leaveID, leave.ValidateLeaveRequest{Action: tt.action}, reviewerID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestValidateLeave_MissingAction(t *testing.T) {
	f := newFixture(t)
	f.leaves.EXPECT().GetByIDForUpdate(gomock.Any(), leaveID).Return(pendingRequest("2025-01-10", "2025-01-12"), nil)

	_, err := f.service.ValidateLeave(context.Background(), leaveID, leave.ValidateLeaveRequest{}, reviewerID)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "action is required", verrs.ToMap()["action"])
	assert.Empty(t, f.publisher.events)
}

func TestValidateLeave_MissingActionOnUnknownRequest(t *testing.T) {
	f := newFixture(t)
	f.leaves.EXPECT().GetByIDForUpdate(gomock.Any(), leaveID).Return(leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound)

	_, err := f.service.ValidateLeave(context.Background(), leaveID, leave.ValidateLeaveRequest{Action: "  "}, reviewerID)

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	var verrs validator.ValidationErrors
	assert.False(t, errors.As(err, &verrs))
}

func TestValidateLeave_LostRaceOnStatus(t *testing.T) {
	f := newFixture(t)
	req := pendingRequest("2025-01-10", "2025-01-12")

	f.leaves.EXPECT().GetByIDForUpdate(gomock.Any(), leaveID).Return(req, nil)
	f.employees.EXPECT().GetByIDForUpdate(gomock.Any(), employeeID).Return(testEmployee(10), nil)
	f.employees.EXPECT().DeductLeaveBalance(gomock.Any(), employeeID, 3, gomock.Any()).Return(testEmployee(7), nil)
	f.leaves.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
		Return(leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed)

	_, err := f.service.ValidateLeave(context.Background(), leaveID, leave.ValidateLeaveRequest{Action: "APPROVED"}, reviewerID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	assert.Empty(t, f.publisher.events)
}

func TestListMyLeaves(t *testing.T) {
	f := newFixture(t)

	f.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(testEmployee(10), nil)
	f.leaves.EXPECT().ListByEmployee(gomock.Any(), employeeID).Return([]leave.LeaveRequest{
		pendingRequest("2025-03-01", "2025-03-02"),
		pendingRequest("2025-01-10", "2025-01-12"),
	}, nil)

	got, err := f.service.ListMyLeaves(context.Background(), employeeID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-01", got[0].StartDate)
	assert.Equal(t, 2, got[0].Days)
}

func TestListMyLeaves_EmptyIsNotNil(t *testing.T) {
	f := newFixture(t)

	f.employees.EXPECT().GetByID(gomock.Any(), employeeID).Return(testEmployee(10), nil)
	f.leaves.EXPECT().ListByEmployee(gomock.Any(), employeeID).Return(nil, nil)

	got, err := f.service.ListMyLeaves(context.Background(), employeeID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListAllLeaves_Filter(t *testing.T) {
	f := newFixture(t)

	f.leaves.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, leave.StatusPending, *filter.Status)
			require.NotNil(t, filter.EmployeeID)
			assert.Equal(t, employeeID, *filter.EmployeeID)
			return []leave.LeaveRequest{pendingRequest("2025-01-10", "2025-01-12")}, nil
		})

	got, err := f.service.ListAllLeaves(context.Background(), leave.ListLeaveFilter{Status: "pending", EmployeeID: employeeID})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListAllLeaves_InvalidFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ListAllLeaves(context.Background(), leave.ListLeaveFilter{Status: "CANCELLED"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "status")
}
