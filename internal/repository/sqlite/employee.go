package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
)

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) employee.EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

func (r *GormEmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if newEmployee.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return employee.Employee{}, fmt.Errorf("generate employee id: %w", err)
		}
		newEmployee.ID = id.String()
	}

	m := newEmployeeModel(newEmployee)
	if err := getDB(ctx, r.db).Create(&m).Error; err != nil {
		return employee.Employee{}, mapError(err, nil, nil)
	}
	return m.toDomain(), nil
}

func (r *GormEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	var m employeeModel
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return employee.Employee{}, mapError(err, employee.ErrEmployeeNotFound, nil)
	}
	return m.toDomain(), nil
}

// GetByIDForUpdate reads the row inside the caller's transaction. SQLite has
// no row locks; the single connection serializes writers instead.
func (r *GormEmployeeRepository) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return r.GetByID(ctx, id)
}

func (r *GormEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	var models []employeeModel
	if err := getDB(ctx, r.db).Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(models))
	for _, m := range models {
		employees = append(employees, m.toDomain())
	}
	return employees, nil
}

func (r *GormEmployeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	db := getDB(ctx, r.db)

	m := newEmployeeModel(emp)
	res := db.Model(&employeeModel{}).Where("id = ?", emp.ID).Updates(map[string]any{
		"name":                  m.Name,
		"email":                 m.Email,
		"department":            m.Department,
		"joining_date":          m.JoiningDate,
		"leave_balance":         m.LeaveBalance,
		"last_taken_leave_date": m.LastTakenLeaveDate,
		"updated_at":            time.Now().UTC(),
	})
	if res.Error != nil {
		return employee.Employee{}, mapError(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.GetByID(ctx, emp.ID)
}

// Delete removes the employee; leave requests and the linked user go with it
// through ON DELETE CASCADE.
func (r *GormEmployeeRepository) Delete(ctx context.Context, id string) error {
	res := getDB(ctx, r.db).Where("id = ?", id).Delete(&employeeModel{})
	if res.Error != nil {
		return mapError(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *GormEmployeeRepository) DeductLeaveBalance(ctx context.Context, id string, days int, takenOn time.Time) (employee.Employee, error) {
	if days <= 0 {
		return employee.Employee{}, fmt.Errorf("deduct %d days: must be positive", days)
	}
	db := getDB(ctx, r.db)
	taken := formatDate(takenOn)

	res := db.Model(&employeeModel{}).
		Where("id = ? AND leave_balance >= ?", id, days).
		Updates(map[string]any{
			"leave_balance":         gorm.Expr("leave_balance - ?", days),
			"last_taken_leave_date": gorm.Expr("MAX(COALESCE(last_taken_leave_date, ?), ?)", taken, taken),
			"updated_at":            time.Now().UTC(),
		})
	if res.Error != nil {
		return employee.Employee{}, mapError(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := db.Model(&employeeModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return employee.Employee{}, fmt.Errorf("check employee %s: %w", id, err)
		}
		if count == 0 {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, employee.ErrInsufficientLeaveBalance
	}
	return r.GetByID(ctx, id)
}
