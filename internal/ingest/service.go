package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"literalura/internal/catalog"
	"literalura/internal/logger"
	"literalura/internal/metrics"
	"literalura/internal/platform/gutendex"
)

type CatalogClient interface {
	SearchURL(term string) string
	Fetch(ctx context.Context, url string) (string, error)
}

// BookStore is the part of catalog.Repository a search writes through.
type BookStore interface {
	FindByTitle(ctx context.Context, title string) ([]catalog.Book, error)
	SaveBooks(ctx context.Context, books []catalog.Book) error
}

type Service struct {
	client CatalogClient
	books  BookStore
	runs   Repository
}

func NewService(client CatalogClient, books BookStore, runs Repository) *Service {
	return &Service{
		client: client,
		books:  books,
		runs:   runs,
	}
}

// Search looks term up in the catalog and stores the books that are not yet
// registered under that term. Terminal outcomes without new books are
// reported through Result.Outcome, not as errors.
func (s *Service) Search(ctx context.Context, term string) (res *Result, err error) {
	run := &Run{
		Term:      term,
		Status:    StatusRunning,
		StartedAt: time.Now(),
	}
	runID, rErr := s.runs.CreateRun(ctx, run)
	if rErr != nil {
		return nil, fmt.Errorf("create search run: %w", rErr)
	}
	run.ID = runID

	done := logger.Track(ctx, "search "+term)
	defer func() {
		p := recover()
		done()
		now := time.Now()
		run.FinishedAt = &now
		switch {
		case p != nil:
			run.Status = StatusFailed
			run.Error = fmt.Sprintf("panic: %v", p)
		case err != nil:
			run.Status = StatusFailed
			run.Error = err.Error()
		default:
			run.Status = res.Outcome
		}
		metrics.SearchesTotal.WithLabelValues(string(run.Status)).Inc()

		if updateErr := s.runs.UpdateRun(ctx, run); updateErr != nil {
			logger.For(ctx).WithError(updateErr).Errorf("Failed to update search run %s", run.ID)
		}
		// The console recovers it and reports the failure.
		if p != nil {
			panic(p)
		}
	}()

	res = &Result{Term: term, URL: s.client.SearchURL(term)}

	body, err := s.client.Fetch(ctx, res.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	if strings.TrimSpace(body) == "" {
		res.Outcome = StatusEmpty
		return res, nil
	}

	results, err := gutendex.Decode(body)
	if errors.Is(err, gutendex.ErrNoResults) {
		res.Outcome = StatusNotFound
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	run.BooksFetched = len(results)

	existing, err := s.books.FindByTitle(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("find existing books: %w", err)
	}
	res.Existing = len(existing)
	fresh := withoutExisting(results, existing)

	if len(fresh) == 0 {
		res.Outcome = StatusDuplicate
		return res, nil
	}

	books := make([]catalog.Book, 0, len(fresh))
	for _, r := range fresh {
		book := toBook(r)
		if err := book.Validate(); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err := s.books.SaveBooks(ctx, books); err != nil {
		return nil, fmt.Errorf("save books: %w", err)
	}
	run.BooksSaved = len(books)
	metrics.BooksSavedTotal.Add(float64(len(books)))

	logger.For(ctx).WithField("saved", len(books)).Debugf("Stored catalog results for %q", term)

	res.Outcome = StatusSaved
	res.Saved = len(books)
	res.Books = distinctByTitle(fresh)
	return res, nil
}

// withoutExisting drops every result whose title equals, case-sensitively,
// the title of a stored book.
func withoutExisting(results []gutendex.BookResult, existing []catalog.Book) []gutendex.BookResult {
	if len(existing) == 0 {
		return results
	}
	stored := make(map[string]bool, len(existing))
	for _, b := range existing {
		stored[b.Title] = true
	}

	out := make([]gutendex.BookResult, 0, len(results))
	for _, r := range results {
		if !stored[r.Title] {
			out = append(out, r)
		}
	}
	return out
}

// distinctByTitle keeps the first result of each title.
func distinctByTitle(results []gutendex.BookResult) []gutendex.BookResult {
	seen := make(map[string]bool, len(results))
	out := make([]gutendex.BookResult, 0, len(results))
	for _, r := range results {
		if seen[r.Title] {
			continue
		}
		seen[r.Title] = true
		out = append(out, r)
	}
	return out
}

func toBook(r gutendex.BookResult) catalog.Book {
	a := r.PrimaryAuthor()
	return catalog.Book{
		Title:         r.Title,
		Language:      r.Language(),
		DownloadCount: r.DownloadCount,
		Author: catalog.Author{
			Name:      a.Name,
			BirthYear: a.BirthYear,
			DeathYear: a.DeathYear,
		},
	}
}
