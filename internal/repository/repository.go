// Package repository opens the configured storage driver and returns the
// repositories backed by it.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/symplora/lms-backend-go/internal/config"
	"github.com/symplora/lms-backend-go/internal/domain/employee"
	"github.com/symplora/lms-backend-go/internal/domain/leave"
	"github.com/symplora/lms-backend-go/internal/domain/user"
	"github.com/symplora/lms-backend-go/internal/pkg/database"
	"github.com/symplora/lms-backend-go/internal/repository/postgresql"
	"github.com/symplora/lms-backend-go/internal/repository/sqlite"
)

type Repositories struct {
	Transactor    database.Transactor
	Employees     employee.EmployeeRepository
	Users         user.UserRepository
	LeaveRequests leave.LeaveRequestRepository

	close func()
}

func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// Open connects to the database selected by DB_DRIVER and brings its schema
// up to date.
func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Database.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns:        int32(cfg.Database.MaxConns),
			MinConns:        int32(cfg.Database.MinConns),
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		slog.Info("connected to database", "driver", "postgres", "host", cfg.Database.Host, "name", cfg.Database.Name)
		return &Repositories{
			Transactor:    postgresql.NewTransactor(db),
			Employees:     postgresql.NewEmployeeRepository(db),
			Users:         postgresql.NewUserRepository(db),
			LeaveRequests: postgresql.NewLeaveRequestRepository(db),
			close:         db.Close,
		}, nil

	case "sqlite":
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		if err := sqlite.AutoMigrate(db.WithContext(ctx)); err != nil {
			closeDB()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		slog.Info("connected to database", "driver", "sqlite", "path", cfg.Database.SQLitePath)
		return &Repositories{
			Transactor:    sqlite.NewTransactor(db),
			Employees:     sqlite.NewGormEmployeeRepository(db),
			Users:         sqlite.NewGormUserRepository(db),
			LeaveRequests: sqlite.NewGormLeaveRequestRepository(db),
			close:         closeDB,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
}
