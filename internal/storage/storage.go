// Package storage opens the configured database and exposes the
// repositories backed by it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"literalura/db"
	"literalura/internal/catalog"
	"literalura/internal/config"
	"literalura/internal/ingest"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

type Storage struct {
	Books catalog.Repository
	Runs  ingest.Repository

	sqlDB   *sql.DB
	pool    *pgxpool.Pool
	dialect string
}

// Open connects to the database named by cfg and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Storage, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return openSQLite(ctx, cfg)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig) (*Storage, error) {
	sqlDB, err := sql.Open(db.SQLiteDriver, SQLiteDSN(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer at a time; a second connection would only wait on the lock.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &Storage{
		Books:   catalog.NewSQLiteRepo(sqlDB),
		Runs:    ingest.NewSQLiteRepo(sqlDB),
		sqlDB:   sqlDB,
		dialect: db.DialectSQLite,
	}, nil
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (*Storage, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Storage{
		Books:   catalog.NewPostgresRepo(pool),
		Runs:    ingest.NewPostgresRepo(pool),
		sqlDB:   stdlib.OpenDBFromPool(pool),
		pool:    pool,
		dialect: db.DialectPostgres,
	}, nil
}

// SQLiteDSN turns a plain file path into a DSN with foreign keys and WAL
// enabled. DSNs that already use the file: scheme, and :memory:, are kept.
func SQLiteDSN(dsn string) string {
	if strings.HasPrefix(dsn, "file:") || dsn == ":memory:" {
		return dsn
	}
	return "file:" + dsn + "?_foreign_keys=on&_journal_mode=WAL"
}

func (s *Storage) Dialect() string {
	return s.dialect
}

// DB returns a database/sql handle for the store, also for Postgres.
func (s *Storage) DB() *sql.DB {
	return s.sqlDB
}

// Migrate applies the pending schema migrations.
func (s *Storage) Migrate(ctx context.Context) error {
	return db.Up(ctx, s.sqlDB, s.dialect)
}

func (s *Storage) Close() error {
	err := s.sqlDB.Close()
	if s.pool != nil {
		s.pool.Close()
	}
	return err
}
