package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/pkg/database"
)

const employeeColumns = `id, name, email, employee_code, department, joining_date,
	leave_balance, last_taken_leave_date, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row scanner) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.EmployeeCode,
		&e.Department,
		&e.JoiningDate,
		&e.LeaveBalance,
		&e.LastTakenLeaveDate,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if newEmployee.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return employee.Employee{}, fmt.Errorf("generate employee id: %w", err)
		}
		newEmployee.ID = id.String()
	}

	query := `
		INSERT INTO employees (id, name, email, employee_code, department, joining_date,
			leave_balance, last_taken_leave_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.EmployeeCode,
		newEmployee.Department,
		newEmployee.JoiningDate,
		newEmployee.LeaveBalance,
		newEmployee.LastTakenLeaveDate,
	))
	if err != nil {
		return employee.Employee{}, mapError(err, nil)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		return employee.Employee{}, mapError(err, employee.ErrEmployeeNotFound)
	}
	return e, nil
}

// GetByIDForUpdate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 FOR UPDATE`
	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		return employee.Employee{}, mapError(err, employee.ErrEmployeeNotFound)
	}
	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at ASC, id ASC`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, email = $3, department = $4, joining_date = $5,
			leave_balance = $6, last_taken_leave_date = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		emp.Department,
		emp.JoiningDate,
		emp.LeaveBalance,
		emp.LastTakenLeaveDate,
	))
	if err != nil {
		return employee.Employee{}, mapError(err, employee.ErrEmployeeNotFound)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return mapError(err, nil)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// DeductLeaveBalance implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) DeductLeaveBalance(ctx context.Context, id string, days int, takenOn time.Time) (employee.Employee, error) {
	if days <= 0 {
		return employee.Employee{}, fmt.Errorf("deduct %d days: must be positive", days)
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET leave_balance = leave_balance - $2,
			last_taken_leave_date = GREATEST(COALESCE(last_taken_leave_date, $3::date), $3::date),
			updated_at = NOW()
		WHERE id = $1 AND leave_balance >= $2
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query, id, days, takenOn))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, mapError(err, nil)
	}

	// No row matched: either the employee is gone or the balance is short.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists); err != nil {
		return employee.Employee{}, fmt.Errorf("check employee %s: %w", id, err)
	}
	if !exists {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{}, employee.ErrInsufficientLeaveBalance
}
