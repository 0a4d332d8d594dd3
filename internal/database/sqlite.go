package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// sqliteDriver is the database/sql driver name registered by modernc.org/sqlite.
const sqliteDriver = "sqlite"

// CreateSQLiteFile creates the database file at path and applies the
// initial schema when one is given. An existing file is left untouched
// apart from running the schema, which must be idempotent.
func CreateSQLiteFile(ctx context.Context, path string, schema string) error {
	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", path, err)
	}
	defer db.Close()

	// The driver creates the file lazily on first connection.
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("create sqlite %s: %w", path, err)
	}
	if schema == "" {
		return nil
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema to %s: %w", path, err)
	}
	return nil
}
