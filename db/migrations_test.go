package db

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir(t *testing.T) {
	dir, err := Dir(DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, "migrations/sqlite", dir)

	dir, err = Dir(DialectPostgres)
	require.NoError(t, err)
	assert.Equal(t, "migrations/postgres", dir)

	_, err = Dir("mysql")
	assert.Error(t, err)
}

func TestMigrations_DialectsStayInStep(t *testing.T) {
	names := func(dialect string) []string {
		dir, err := Dir(dialect)
		require.NoError(t, err)
		entries, err := fs.ReadDir(migrations, dir)
		require.NoError(t, err)

		var out []string
		for _, e := range entries {
			out = append(out, e.Name())
		}
		return out
	}

	assert.Equal(t, names(DialectSQLite), names(DialectPostgres))
}

func TestUp_SQLite(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := sql.Open(SQLiteDriver, "file:"+filepath.Join(t.TempDir(), "test.db")+"?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Up(ctx, sqlDB, DialectSQLite))
	// Applying twice is a no-op.
	require.NoError(t, Up(ctx, sqlDB, DialectSQLite))

	rows, err := sqlDB.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		if !strings.HasPrefix(name, "sqlite_") {
			tables = append(tables, name)
		}
	}
	require.NoError(t, rows.Err())
	assert.Subset(t, tables, []string{"authors", "books", "search_runs", "goose_db_version"})
}
