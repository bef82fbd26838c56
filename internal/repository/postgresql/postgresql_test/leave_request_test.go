package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/leave"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/repository/postgresql"
)

func TestLeaveRequestRepository_OverlapAndOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewLeaveRequestRepository(db)
	ctx := context.Background()

	e := createEmployee(t, db, "EMP-001", 10)

	approved, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: e.ID, StartDate: date("2025-03-05"), EndDate: date("2025-03-10"),
		Reason: "trip", Status: leave.StatusApproved,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: e.ID, StartDate: date("2025-04-01"), EndDate: date("2025-04-02"),
		Reason: "pending", Status: leave.StatusPending,
	})
	require.NoError(t, err)

	overlaps, err := repo.FindOverlappingApproved(ctx, e.ID, date("2025-03-08"), date("2025-03-12"))
	require.NoError(t, err)
	require.Len(t, overlaps, 1)
	assert.Equal(t, approved.ID, overlaps[0].ID)

	overlaps, err = repo.FindOverlappingApproved(ctx, e.ID, date("2025-03-11"), date("2025-03-15"))
	require.NoError(t, err)
	assert.Empty(t, overlaps)

	// Pending requests never count as overlaps.
	overlaps, err = repo.FindOverlappingApproved(ctx, e.ID, date("2025-04-01"), date("2025-04-01"))
	require.NoError(t, err)
	assert.Empty(t, overlaps)

	mine, err := repo.ListByEmployee(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, date("2025-04-01"), mine[0].StartDate.UTC())

	status := leave.StatusApproved
	all, err := repo.List(ctx, leave.LeaveFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].EmployeeName)
	assert.Equal(t, e.Name, *all[0].EmployeeName)
}

func TestLeaveRequestRepository_UnknownEmployee(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewLeaveRequestRepository(db)

	_, err := repo.Create(context.Background(), leave.LeaveRequest{
		EmployeeID: "0192f5c0-7d7e-7cc1-8f00-000000000099",
		StartDate:  date("2025-03-05"), EndDate: date("2025-03-06"),
		Reason: "x", Status: leave.StatusPending,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLeaveRequestRepository_UpdateStatusOnlyFromPending(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewLeaveRequestRepository(db)
	ctx := context.Background()

	e := createEmployee(t, db, "EMP-001", 10)
	reviewer, err := postgresql.NewUserRepository(db).Create(ctx, user.User{
		Email: "hr@company.com", PasswordHash: "hash", Role: user.RoleHR,
	})
	require.NoError(t, err)

	req, err := repo.Create(ctx, leave.LeaveRequest{
		EmployeeID: e.ID, StartDate: date("2025-01-10"), EndDate: date("2025-01-12"),
		Reason: "trip", Status: leave.StatusPending,
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	updated, err := repo.UpdateStatus(ctx, leave.LeaveStatusUpdate{
		ID: req.ID, From: leave.StatusPending, To: leave.StatusApproved,
		ReviewedBy: reviewer.ID, ReviewedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, updated.Status)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, reviewer.ID, *updated.ReviewedBy)

	_, err = repo.UpdateStatus(ctx, leave.LeaveStatusUpdate{
		ID: req.ID, From: leave.StatusPending, To: leave.StatusRejected,
		ReviewedBy: reviewer.ID, ReviewedAt: now,
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = repo.UpdateStatus(ctx, leave.LeaveStatusUpdate{
		ID: "0192f5c0-7d7e-7cc1-8f00-000000000099", From: leave.StatusPending, To: leave.StatusRejected,
		ReviewedBy: reviewer.ID, ReviewedAt: now,
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
