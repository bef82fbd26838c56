package employee

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/pkg/database"
	"github.com/symplora/lms-backend-go/internal/pkg/email"
	"github.com/symplora/lms-backend-go/internal/pkg/events"
	"github.com/symplora/lms-backend-go/internal/pkg/validator"
)

const (
	temporaryPasswordLength  = 12
	temporaryPasswordCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"
)

type EmployeeServiceImpl struct {
	tx database.Transactor
	employee.EmployeeRepository
	user.UserRepository
	emailService   email.EmailService
	publisher      events.Publisher
	bcryptCost     int
	defaultBalance int

	generatePassword func() (string, error)
	now              func() time.Time
}

func NewEmployeeService(
	tx database.Transactor,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	emailService email.EmailService,
	publisher events.Publisher,
	bcryptCost int,
	defaultBalance int,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:                 tx,
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
		emailService:       emailService,
		publisher:          publisher,
		bcryptCost:         bcryptCost,
		defaultBalance:     defaultBalance,
		generatePassword:   generateTemporaryPassword,
		now:                time.Now,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	joiningDate, _ := validator.IsValidDate(req.JoiningDate)
	balance := s.defaultBalance
	if req.LeaveBalance != nil {
		balance = *req.LeaveBalance
	}

	password, err := s.generatePassword()
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var (
		created employee.Employee
		account user.User
	)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.EmployeeRepository.Create(ctx, employee.Employee{
			Name:         req.Name,
			Email:        req.Email,
			EmployeeCode: req.EmployeeCode,
			Department:   req.Department,
			JoiningDate:  joiningDate,
			LeaveBalance: balance,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		employeeID := created.ID
		account, err = s.UserRepository.Create(ctx, user.User{
			Email:        created.Email,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
			EmployeeID:   &employeeID,
			IsFirstLogin: true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user account: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	slog.Info("employee created",
		"employee_id", created.ID,
		"user_id", account.ID,
		"employee_code", created.EmployeeCode,
	)

	resp := employee.CreateEmployeeResponse{
		Employee: employee.NewEmployeeResponse(created),
		UserID:   account.ID,
	}
	if !s.sendWelcome(created, password) {
		resp.TemporaryPassword = password
	}

	events.PublishLogged(ctx, s.publisher, events.Event{
		Type:       events.TypeEmployeeCreated,
		Key:        created.ID,
		OccurredAt: s.now().UTC(),
		Payload: events.EmployeeCreated{
			EmployeeID:   created.ID,
			UserID:       account.ID,
			Email:        created.Email,
			EmployeeCode: created.EmployeeCode,
			Department:   created.Department,
		},
	})

	return resp, nil
}

// sendWelcome reports whether the credentials reached the employee by email.
func (s *EmployeeServiceImpl) sendWelcome(e employee.Employee, password string) bool {
	if s.emailService == nil || !s.emailService.Enabled() {
		return false
	}

	err := s.emailService.SendWelcome(email.WelcomeEmail{
		To:                e.Email,
		Name:              e.Name,
		Email:             e.Email,
		Department:        e.Department,
		EmployeeCode:      e.EmployeeCode,
		TemporaryPassword: password,
	})
	if err != nil {
		slog.Error("failed to send welcome email", "employee_id", e.ID, "error", err)
		return false
	}
	return true
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.NewEmployeeResponse(e), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, employee.NewEmployeeResponse(e))
	}
	return resp, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.EmployeeRepository.GetByIDForUpdate(ctx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		req.Apply(&current)

		updated, err = s.EmployeeRepository.Update(ctx, current)
		if err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee updated", "employee_id", updated.ID)
	return employee.NewEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	slog.Info("employee deleted", "employee_id", id)
	return nil
}

// GetLeaveBalance implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetLeaveBalance(ctx context.Context, id string) (employee.LeaveBalanceResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.LeaveBalanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	resp := employee.NewEmployeeResponse(e)
	return employee.LeaveBalanceResponse{
		EmployeeID:         resp.ID,
		LeaveBalance:       resp.LeaveBalance,
		LastTakenLeaveDate: resp.LastTakenLeaveDate,
	}, nil
}

func generateTemporaryPassword() (string, error) {
	limit := big.NewInt(int64(len(temporaryPasswordCharset)))
	b := make([]byte, temporaryPasswordLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = temporaryPasswordCharset[n.Int64()]
	}
	return string(b), nil
}
