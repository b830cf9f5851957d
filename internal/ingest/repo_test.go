package ingest_test

import (
	"context"
	"testing"
	"time"

	"literalura/internal/ingest"
	"literalura/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepo_Runs(t *testing.T) {
	ctx := context.Background()
	sqlDB := testutil.NewSQLiteDB(t)
	repo := ingest.NewSQLiteRepo(sqlDB)

	run := &ingest.Run{Term: "Frankenstein", Status: ingest.StatusRunning, StartedAt: time.Now()}
	id, err := repo.CreateRun(ctx, run)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	run.ID = id
	finished := time.Now()
	run.FinishedAt = &finished
	run.Status = ingest.StatusSaved
	run.BooksFetched = 2
	run.BooksSaved = 2
	require.NoError(t, repo.UpdateRun(ctx, run))

	var (
		status       string
		fetched      int
		saved        int
		finishedNull bool
	)
	err = sqlDB.QueryRowContext(ctx,
		`SELECT status, books_fetched, books_saved, finished_at IS NULL FROM search_runs WHERE id = ?`, id,
	).Scan(&status, &fetched, &saved, &finishedNull)
	require.NoError(t, err)
	assert.Equal(t, "SAVED", status)
	assert.Equal(t, 2, fetched)
	assert.Equal(t, 2, saved)
	assert.False(t, finishedNull)
}

func TestPostgresRepo_Runs(t *testing.T) {
	ctx := context.Background()
	pool := testutil.NewPostgresPool(t)
	repo := ingest.NewPostgresRepo(pool)

	run := &ingest.Run{Term: "Frankenstein", Status: ingest.StatusRunning, StartedAt: time.Now()}
	id, err := repo.CreateRun(ctx, run)
	require.NoError(t, err)

	run.ID = id
	finished := time.Now()
	run.FinishedAt = &finished
	run.Status = ingest.StatusFailed
	run.Error = "boom"
	require.NoError(t, repo.UpdateRun(ctx, run))

	var status, msg string
	require.NoError(t, pool.QueryRow(ctx, `SELECT status, error FROM search_runs WHERE id = $1`, id).Scan(&status, &msg))
	assert.Equal(t, "FAILED", status)
	assert.Equal(t, "boom", msg)
}
