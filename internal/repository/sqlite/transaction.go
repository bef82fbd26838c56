package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/symplora/lms-backend-go/internal/pkg/database"
)

type txKey struct{}

// getDB returns the transaction carried by ctx or the base handle.
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

type transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) database.Transactor {
	return &transactor{db: db}
}

// WithinTransaction joins the transaction already carried by ctx, if any.
// The pool holds a single connection, so transactions never interleave.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
