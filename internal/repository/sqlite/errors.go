package sqlite

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/pkg/database"
)

// uniqueColumns keys SQLite's "UNIQUE constraint failed: table.column".
var uniqueColumns = map[string]error{
	"employees.email":         employee.ErrEmailExists,
	"employees.employee_code": employee.ErrEmployeeCodeExists,
	"users.email":             user.ErrUserEmailExists,
}

// mapError turns driver errors into domain errors. notFound replaces
// gorm.ErrRecordNotFound and badReference replaces a foreign key failure,
// which SQLite reports without naming the constraint.
func mapError(err, notFound, badReference error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		for column, mapped := range uniqueColumns {
			if strings.Contains(msg, column) {
				return mapped
			}
		}
		return database.ErrDuplicateKey
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		if badReference != nil {
			return badReference
		}
		return database.ErrReference
	case strings.Contains(msg, "CHECK constraint failed") && strings.Contains(msg, "leave_balance"):
		return employee.ErrInsufficientLeaveBalance
	}
	return err
}
