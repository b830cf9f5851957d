package main

import (
	"os"
	"path/filepath"

	"literalura/db"
)

// migrationsDir returns the on-disk migrations for dialect. MIGRATIONS_DIR
// overrides it.
func migrationsDir(dialect string) string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	if dialect == db.DialectPostgres {
		return filepath.Join("db", "migrations", "postgres")
	}
	return filepath.Join("db", "migrations", "sqlite")
}
