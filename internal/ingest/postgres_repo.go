package ingest

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) CreateRun(ctx context.Context, run *Run) (string, error) {
	const sql = `
		INSERT INTO search_runs (id, term, status, started_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text`

	var id string
	err := r.db.QueryRow(ctx, sql, uuid.NewString(), run.Term, string(run.Status), run.StartedAt).Scan(&id)
	return id, err
}

func (r *PostgresRepo) UpdateRun(ctx context.Context, run *Run) error {
	const sql = `
		UPDATE search_runs SET
			finished_at = $1,
			status = $2,
			books_fetched = $3,
			books_saved = $4,
			error = $5
		WHERE id = $6`

	_, err := r.db.Exec(ctx, sql, run.FinishedAt, string(run.Status), run.BooksFetched, run.BooksSaved, run.Error, run.ID)
	return err
}
