package ingest

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

func (r *SQLiteRepo) CreateRun(ctx context.Context, run *Run) (string, error) {
	const query = `
		INSERT INTO search_runs (id, term, status, started_at)
		VALUES (?, ?, ?, ?)`

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, query, id, run.Term, string(run.Status), run.StartedAt.UTC()); err != nil {
		return "", err
	}
	return id, nil
}

func (r *SQLiteRepo) UpdateRun(ctx context.Context, run *Run) error {
	const query = `
		UPDATE search_runs SET
			finished_at = ?,
			status = ?,
			books_fetched = ?,
			books_saved = ?,
			error = ?
		WHERE id = ?`

	var finished sql.NullTime
	if run.FinishedAt != nil {
		finished = sql.NullTime{Time: run.FinishedAt.UTC(), Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query, finished, string(run.Status), run.BooksFetched, run.BooksSaved, run.Error, run.ID)
	return err
}
