package employee

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock
type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends
	// on drivers that support row locks.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	// DeductLeaveBalance subtracts days only if the stored balance still covers
	// them, and returns ErrInsufficientLeaveBalance otherwise.
	DeductLeaveBalance(ctx context.Context, id string, days int, takenOn time.Time) (Employee, error)
}
