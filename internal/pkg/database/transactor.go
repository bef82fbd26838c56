package database

import (
	"context"
	"errors"
)

// Transactor runs fn inside a single database transaction. The context passed
// to fn carries the transaction, so repositories called with it join the
// transaction instead of using the pool.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Driver-independent errors for constraint violations that no repository
// mapped to a domain error.
var (
	ErrDuplicateKey = errors.New("record already exists")
	ErrReference    = errors.New("referenced record does not exist")
)
