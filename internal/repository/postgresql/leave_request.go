package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/symplora/lms-backend-go/internal/domain/leave"
	"github.com/symplora/lms-backend-go/internal/pkg/database"
)

const leaveRequestColumns = `lr.id, lr.employee_id, lr.start_date, lr.end_date, lr.reason, lr.status,
	lr.rejection_reason, lr.reviewed_by, lr.reviewed_at, lr.created_at, lr.updated_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row scanner, extra ...any) (leave.LeaveRequest, error) {
	var r leave.LeaveRequest
	var status string
	dest := []any{
		&r.ID,
		&r.EmployeeID,
		&r.StartDate,
		&r.EndDate,
		&r.Reason,
		&status,
		&r.RejectionReason,
		&r.ReviewedBy,
		&r.ReviewedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return leave.LeaveRequest{}, err
	}
	r.Status = leave.LeaveStatus(status)
	return r, nil
}

func collectLeaveRequests(rows pgx.Rows, withName bool) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var (
			r    leave.LeaveRequest
			err  error
			name string
		)
		if withName {
			r, err = scanLeaveRequest(rows, &name)
			r.EmployeeName = &name
		} else {
			r, err = scanLeaveRequest(rows)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("generate leave request id: %w", err)
		}
		request.ID = id.String()
	}

	query := `
		INSERT INTO leave_requests AS lr (id, employee_id, start_date, end_date, reason, status, rejection_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.StartDate,
		request.EndDate,
		request.Reason,
		string(request.Status),
		request.RejectionReason,
	))
	if err != nil {
		return leave.LeaveRequest{}, mapError(err, nil)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, " FOR UPDATE")
}

func (r *leaveRequestRepositoryImpl) getByID(ctx context.Context, id, lock string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests lr WHERE lr.id = $1` + lock
	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		return leave.LeaveRequest{}, mapError(err, leave.ErrLeaveRequestNotFound)
	}
	return request, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		ORDER BY lr.start_date DESC, lr.created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests for employee %s: %w", employeeID, err)
	}
	return collectLeaveRequests(rows, false)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []any
	)
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", len(args)))
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + leaveRequestColumns + `, e.name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id`)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY lr.created_at DESC, lr.id DESC")

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return collectLeaveRequests(rows, true)
}

// FindOverlappingApproved implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) FindOverlappingApproved(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
			AND lr.status = $2
			AND lr.start_date <= $4
			AND lr.end_date >= $3
		ORDER BY lr.start_date ASC`

	rows, err := q.Query(ctx, query, employeeID, string(leave.StatusApproved), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping leave requests: %w", err)
	}
	return collectLeaveRequests(rows, false)
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, update leave.LeaveStatusUpdate) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests AS lr
		SET status = $3, rejection_reason = $4, reviewed_by = $5, reviewed_at = $6, updated_at = NOW()
		WHERE lr.id = $1 AND lr.status = $2
		RETURNING ` + leaveRequestColumns

	updated, err := scanLeaveRequest(q.QueryRow(ctx, query,
		update.ID,
		string(update.From),
		string(update.To),
		update.RejectionReason,
		update.ReviewedBy,
		update.ReviewedAt,
	))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, mapError(err, nil)
	}

	if _, err := r.GetByID(ctx, update.ID); err != nil {
		return leave.LeaveRequest{}, err
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
}
