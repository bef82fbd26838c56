package postgresql

import (
	"context"
	"fmt"

	"github.com/symplora/lms-backend-go/internal/pkg/database"
	"github.com/symplora/lms-backend-go/migrations"
)

// Migrate applies the embedded schema. Every statement is idempotent, so it
// is safe to run on each start.
func Migrate(ctx context.Context, db *database.DB) error {
	scripts, err := migrations.Up()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	for i, script := range scripts {
		if _, err := db.Exec(ctx, script); err != nil {
			return fmt.Errorf("apply migration %d: %w", i+1, err)
		}
	}
	return nil
}
