package leave_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/leave"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/pkg/database"
	"github.com/symplora/lms-backend-go/internal/pkg/events"
	"github.com/symplora/lms-backend-go/internal/repository/sqlite"
	leaveservice "github.com/symplora/lms-backend-go/internal/service/leave"
)

func TestLeaveLifecycle_SQLite(t *testing.T) {
	ctx := context.Background()

	name := strings.NewReplacer("/", "_").Replace(t.Name())
	db, err := database.NewSQLiteDB("file:" + name + "?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	require.NoError(t, sqlite.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	employees := sqlite.NewGormEmployeeRepository(db)
	users := sqlite.NewGormUserRepository(db)
	requests := sqlite.NewGormLeaveRequestRepository(db)
	svc := leaveservice.NewLeaveService(sqlite.NewTransactor(db), requests, employees, events.LogPublisher{})

	emp, err := employees.Create(ctx, employee.Employee{
		Name:         "Budi",
		Email:        "budi@company.com",
		EmployeeCode: "EMP-100",
		Department:   "Finance",
		JoiningDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaveBalance: 10,
	})
	require.NoError(t, err)

	hr, err := users.Create(ctx, user.User{
		Email:        "hr@company.com",
		PasswordHash: "x",
		Role:         user.RoleHR,
	})
	require.NoError(t, err)

	first, err := svc.ApplyLeave(ctx, emp.ID, leave.ApplyLeaveRequest{
		StartDate: "2025-01-10",
		EndDate:   "2025-01-12",
		Reason:    "family trip",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, first.Status)

	// Pending requests do not block each other or touch the balance.
	untouched, err := employees.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, untouched.LeaveBalance)

	approved, err := svc.ValidateLeave(ctx, first.ID, leave.ValidateLeaveRequest{Action: "APPROVED"}, hr.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedAt)

	after, err := employees.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, after.LeaveBalance)
	require.NotNil(t, after.LastTakenLeaveDate)
	assert.Equal(t, "2025-01-12", after.LastTakenLeaveDate.Format("2006-01-02"))

	overlapping, err := svc.ApplyLeave(ctx, emp.ID, leave.ApplyLeaveRequest{
		StartDate: "2025-01-11",
		EndDate:   "2025-01-11",
		Reason:    "doctor",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, overlapping.Status)
	require.NotNil(t, overlapping.RejectionReason)
	assert.Equal(t, leave.ReasonOverlapsApproved, *overlapping.RejectionReason)

	_, err = svc.ValidateLeave(ctx, first.ID, leave.ValidateLeaveRequest{Action: "REJECTED"}, hr.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	mine, err := svc.ListMyLeaves(ctx, emp.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	pending, err := svc.ListAllLeaves(ctx, leave.ListLeaveFilter{Status: "PENDING"})
	require.NoError(t, err)
	assert.Empty(t, pending)

	all, err := svc.ListAllLeaves(ctx, leave.ListLeaveFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].EmployeeName)
	assert.Equal(t, "Budi", *all[0].EmployeeName)

	final, err := employees.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, final.LeaveBalance)
}
