package ingest

import (
	"context"
	"time"

	"literalura/internal/platform/gutendex"
)

// Status is the state of a search run. Every status except StatusRunning is
// final.
type Status string

const (
	StatusRunning   Status = "RUNNING"
	StatusEmpty     Status = "EMPTY"
	StatusNotFound  Status = "NOT_FOUND"
	StatusDuplicate Status = "DUPLICATE"
	StatusSaved     Status = "SAVED"
	StatusFailed    Status = "FAILED"
)

// Run is the stored record of a single title search.
type Run struct {
	ID           string
	Term         string
	StartedAt    time.Time
	FinishedAt   *time.Time
	Status       Status
	BooksFetched int
	BooksSaved   int
	Error        string
}

// Result is what a search reports back to the console.
type Result struct {
	Term    string
	URL     string
	Outcome Status
	// Existing is the number of stored books whose title matches Term.
	Existing int
	Saved    int
	// Books are the new catalog records, distinct by title.
	Books []gutendex.BookResult
}

type Repository interface {
	CreateRun(ctx context.Context, run *Run) (string, error)
	UpdateRun(ctx context.Context, run *Run) error
}
