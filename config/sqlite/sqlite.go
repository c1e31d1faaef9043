// Package sqlite opens the embedded sqlite database behind the memory store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"lockfocus-assistant/config"
)

const driverName = "sqlite"

// Connect opens the database at cfg.Path and checks it is reachable.
func Connect(ctx context.Context, cfg config.MemoryConfig) (*sql.DB, error) {
	return Open(ctx, cfg.Path)
}

// Open opens the database at path. ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	// One connection: sqlite has a single writer and ":memory:" is per connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping %s: %w", path, err)
	}
	return db, nil
}

// Disconnect closes the database.
func Disconnect(ctx context.Context, db *sql.DB) {
	if db != nil {
		_ = db.Close()
	}
}
