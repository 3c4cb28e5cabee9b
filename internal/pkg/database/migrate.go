package database

import (
	"context"
	"fmt"
)

// Migrate creates the schema if it does not exist yet. It is run once at
// startup by the owning process, never lazily from the data layer.
//
// There is intentionally no UNIQUE constraint on (employee_id, date, time):
// the single-insert path accepts duplicates by contract, deduplication
// belongs to the bulk merge path only.
func Migrate(ctx context.Context, db *DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			employee_id TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			email       TEXT NOT NULL,
			finger_id   INTEGER NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id          BIGSERIAL PRIMARY KEY,
			employee_id TEXT NOT NULL,
			finger_id   INTEGER NOT NULL,
			date        TEXT NOT NULL,
			time        TEXT NOT NULL,
			synced      BOOLEAN NOT NULL DEFAULT false,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_dedup ON attendance (employee_id, date, time)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}

	return nil
}
