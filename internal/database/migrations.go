package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the local storage schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		// One row per named record, like a browser's localStorage
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS local_storage (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS idx_local_storage_updated
			ON local_storage(updated_at)
		`)
		return err
	})
}
