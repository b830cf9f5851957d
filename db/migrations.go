// Package db holds the embedded goose migrations for every supported store.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed migrations
var migrations embed.FS

const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

// Dir returns the embedded migrations directory for dialect.
func Dir(dialect string) (string, error) {
	switch dialect {
	case DialectSQLite:
		return path.Join("migrations", "sqlite"), nil
	case DialectPostgres:
		return path.Join("migrations", "postgres"), nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", dialect)
	}
}

// Up applies all pending migrations for dialect.
func Up(ctx context.Context, sqlDB *sql.DB, dialect string) error {
	dir, err := Dir(dialect)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(GooseLogger{Level: logrus.DebugLevel})
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
