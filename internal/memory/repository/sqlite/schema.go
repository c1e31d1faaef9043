package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS memory_patterns (
		session_id   TEXT    NOT NULL,
		pattern_type TEXT    NOT NULL,
		data         TEXT    NOT NULL,
		confidence   REAL    NOT NULL,
		updated_at   INTEGER NOT NULL,
		PRIMARY KEY (session_id, pattern_type)
	)`,
	`CREATE TABLE IF NOT EXISTS memory_tasks (
		row_id     INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT    NOT NULL,
		task_id    TEXT    NOT NULL,
		text       TEXT    NOT NULL,
		priority   TEXT    NOT NULL,
		status     TEXT    NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_memory_tasks_session ON memory_tasks (session_id)`,
}

// Migrate creates the memory tables when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("memory/repository/sqlite: migrate: %w", err)
		}
	}
	return nil
}
