package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/pkg/database"
	"github.com/symplora/lms-backend-go/internal/repository/postgresql"
)

// newTestDB connects to TEST_DATABASE_URL, applies the schema and empties
// every table. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn, database.PoolOptions{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	require.NoError(t, postgresql.Migrate(ctx, db))

	_, err = db.Exec(ctx, "TRUNCATE TABLE leave_requests, users, employees CASCADE")
	require.NoError(t, err)

	return db
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func createEmployee(t *testing.T, db *database.DB, code string, balance int) employee.Employee {
	t.Helper()
	e, err := postgresql.NewEmployeeRepository(db).Create(context.Background(), employee.Employee{
		Name:         "Employee " + code,
		Email:        code + "@company.com",
		EmployeeCode: code,
		Department:   "Engineering",
		JoiningDate:  date("2024-01-01"),
		LeaveBalance: balance,
	})
	require.NoError(t, err)
	return e
}
