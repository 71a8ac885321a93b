package store

import (
	"context"
	"database/sql"
)

// schema is applied in order; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id                 TEXT PRIMARY KEY,
		algorithm          TEXT NOT NULL,
		request            TEXT NOT NULL,
		response           TEXT NOT NULL,
		avg_waiting_time   REAL NOT NULL DEFAULT 0,
		avg_turnaround     REAL NOT NULL DEFAULT 0,
		created_at         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
