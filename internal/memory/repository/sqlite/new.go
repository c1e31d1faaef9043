package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"lockfocus-assistant/internal/memory/repository"
	"lockfocus-assistant/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new sqlite-backed Repository for the memory domain.
// The schema must already exist; see Migrate.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("memory/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("memory/repository/sqlite.%s", method)
}
