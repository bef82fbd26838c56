package sqlite

import (
	"time"

	"gorm.io/gorm"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/leave"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/pkg/validator"
)

// Dates are stored as YYYY-MM-DD text so range comparisons are plain string
// comparisons.

type employeeModel struct {
	ID                 string    `gorm:"primaryKey;type:text"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Email              string    `gorm:"type:varchar(254);not null;uniqueIndex"`
	EmployeeCode       string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Department         string    `gorm:"type:varchar(100);not null"`
	JoiningDate        string    `gorm:"type:text;not null"`
	LeaveBalance       int       `gorm:"not null;check:leave_balance >= 0"`
	LastTakenLeaveDate *string   `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

func (employeeModel) TableName() string {
	return "employees"
}

type userModel struct {
	ID           string         `gorm:"primaryKey;type:text"`
	Email        string         `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash string         `gorm:"type:text;not null"`
	Role         string         `gorm:"type:varchar(10);not null"`
	EmployeeID   *string        `gorm:"type:text;index"`
	Employee     *employeeModel `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	IsFirstLogin bool           `gorm:"not null"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
}

func (userModel) TableName() string {
	return "users"
}

type leaveRequestModel struct {
	ID              string         `gorm:"primaryKey;type:text"`
	EmployeeID      string         `gorm:"type:text;not null;index:idx_leave_requests_employee_start,priority:1"`
	Employee        *employeeModel `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	StartDate       string         `gorm:"type:text;not null;index:idx_leave_requests_employee_start,priority:2"`
	EndDate         string         `gorm:"type:text;not null"`
	Reason          string         `gorm:"type:text;not null"`
	Status          string         `gorm:"type:varchar(10);not null;index"`
	RejectionReason *string        `gorm:"type:text"`
	ReviewedBy      *string        `gorm:"type:text"`
	ReviewedAt      *time.Time
	CreatedAt       time.Time `gorm:"not null;index"`
	UpdatedAt       time.Time `gorm:"not null"`
}

func (leaveRequestModel) TableName() string {
	return "leave_requests"
}

// AutoMigrate creates or updates the tables in dependency order.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&employeeModel{}, &userModel{}, &leaveRequestModel{})
}

func formatDate(t time.Time) string {
	return leave.NormalizeDate(t).Format(validator.DateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func parseDate(s string) time.Time {
	t, _ := validator.IsValidDate(s)
	return t
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseDate(*s)
	return &t
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func newEmployeeModel(e employee.Employee) employeeModel {
	return employeeModel{
		ID:                 e.ID,
		Name:               e.Name,
		Email:              e.Email,
		EmployeeCode:       e.EmployeeCode,
		Department:         e.Department,
		JoiningDate:        formatDate(e.JoiningDate),
		LeaveBalance:       e.LeaveBalance,
		LastTakenLeaveDate: formatDatePtr(e.LastTakenLeaveDate),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func (m employeeModel) toDomain() employee.Employee {
	return employee.Employee{
		ID:                 m.ID,
		Name:               m.Name,
		Email:              m.Email,
		EmployeeCode:       m.EmployeeCode,
		Department:         m.Department,
		JoiningDate:        parseDate(m.JoiningDate),
		LeaveBalance:       m.LeaveBalance,
		LastTakenLeaveDate: parseDatePtr(m.LastTakenLeaveDate),
		CreatedAt:          m.CreatedAt.UTC(),
		UpdatedAt:          m.UpdatedAt.UTC(),
	}
}

func newUserModel(u user.User) userModel {
	return userModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		EmployeeID:   u.EmployeeID,
		IsFirstLogin: u.IsFirstLogin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m userModel) toDomain() user.User {
	return user.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         user.Role(m.Role),
		EmployeeID:   m.EmployeeID,
		IsFirstLogin: m.IsFirstLogin,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func newLeaveRequestModel(r leave.LeaveRequest) leaveRequestModel {
	return leaveRequestModel{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		StartDate:       formatDate(r.StartDate),
		EndDate:         formatDate(r.EndDate),
		Reason:          r.Reason,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (m leaveRequestModel) toDomain() leave.LeaveRequest {
	r := leave.LeaveRequest{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		StartDate:       parseDate(m.StartDate),
		EndDate:         parseDate(m.EndDate),
		Reason:          m.Reason,
		Status:          leave.LeaveStatus(m.Status),
		RejectionReason: m.RejectionReason,
		ReviewedBy:      m.ReviewedBy,
		ReviewedAt:      utcPtr(m.ReviewedAt),
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
	if m.Employee != nil {
		name := m.Employee.Name
		r.EmployeeName = &name
	}
	return r
}
