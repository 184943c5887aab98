package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order; every statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS analysis_logs (
		id          TEXT PRIMARY KEY,
		text        TEXT NOT NULL,
		confidence  REAL NOT NULL,
		matches     INTEGER NOT NULL DEFAULT 0,
		suggestions TEXT NOT NULL DEFAULT '',
		latency_ms  INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_logs_created_at
		ON analysis_logs(created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
