package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/pkg/database"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

var constraintErrors = map[string]error{
	"employees_email_key":             employee.ErrEmailExists,
	"employees_employee_code_key":     employee.ErrEmployeeCodeExists,
	"employees_leave_balance_check":   employee.ErrInsufficientLeaveBalance,
	"users_email_key":                 user.ErrUserEmailExists,
	"users_employee_id_fkey":          employee.ErrEmployeeNotFound,
	"leave_requests_employee_id_fkey": employee.ErrEmployeeNotFound,
	"leave_requests_reviewed_by_fkey": user.ErrUserNotFound,
}

// mapError turns driver errors into domain errors. notFound is returned for
// pgx.ErrNoRows; pass nil where no row is not an error.
func mapError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
		return mapped
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", database.ErrDuplicateKey, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s", database.ErrReference, pgErr.ConstraintName)
	case pgCheckViolation:
		return fmt.Errorf("check constraint %s violated: %w", pgErr.ConstraintName, err)
	}
	return err
}

type scanner interface {
	Scan(dest ...any) error
}
