package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/leave"
)

type GormLeaveRequestRepository struct {
	db *gorm.DB
}

func NewGormLeaveRequestRepository(db *gorm.DB) leave.LeaveRequestRepository {
	return &GormLeaveRequestRepository{db: db}
}

func toLeaveRequests(models []leaveRequestModel) []leave.LeaveRequest {
	requests := make([]leave.LeaveRequest, 0, len(models))
	for _, m := range models {
		requests = append(requests, m.toDomain())
	}
	return requests
}

func (r *GormLeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	if request.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("generate leave request id: %w", err)
		}
		request.ID = id.String()
	}

	m := newLeaveRequestModel(request)
	if err := getDB(ctx, r.db).Create(&m).Error; err != nil {
		return leave.LeaveRequest{}, mapError(err, nil, employee.ErrEmployeeNotFound)
	}
	return m.toDomain(), nil
}

func (r *GormLeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	var m leaveRequestModel
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return leave.LeaveRequest{}, mapError(err, leave.ErrLeaveRequestNotFound, nil)
	}
	return m.toDomain(), nil
}

// GetByIDForUpdate has the same locking caveat as the employee repository.
func (r *GormLeaveRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.GetByID(ctx, id)
}

func (r *GormLeaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var models []leaveRequestModel
	err := getDB(ctx, r.db).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC, created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests for employee %s: %w", employeeID, err)
	}
	return toLeaveRequests(models), nil
}

func (r *GormLeaveRequestRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	q := getDB(ctx, r.db).Preload("Employee")
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.EmployeeID != nil {
		q = q.Where("employee_id = ?", *filter.EmployeeID)
	}

	var models []leaveRequestModel
	if err := q.Order("created_at DESC, id DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return toLeaveRequests(models), nil
}

func (r *GormLeaveRequestRepository) FindOverlappingApproved(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	var models []leaveRequestModel
	err := getDB(ctx, r.db).
		Where("employee_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			employeeID, string(leave.StatusApproved), formatDate(end), formatDate(start)).
		Order("start_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping leave requests: %w", err)
	}
	return toLeaveRequests(models), nil
}

func (r *GormLeaveRequestRepository) UpdateStatus(ctx context.Context, update leave.LeaveStatusUpdate) (leave.LeaveRequest, error) {
	db := getDB(ctx, r.db)

	reviewedAt := update.ReviewedAt.UTC()
	res := db.Model(&leaveRequestModel{}).
		Where("id = ? AND status = ?", update.ID, string(update.From)).
		Updates(map[string]any{
			"status":           string(update.To),
			"rejection_reason": update.RejectionReason,
			"reviewed_by":      update.ReviewedBy,
			"reviewed_at":      reviewedAt,
			"updated_at":       time.Now().UTC(),
		})
	if res.Error != nil {
		return leave.LeaveRequest{}, mapError(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, update.ID); err != nil {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}
	return r.GetByID(ctx, update.ID)
}
