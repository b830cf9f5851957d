package catalog

import (
	"context"
)

//go:generate mockgen -destination=mocks/repository.go -package=mocks literalura/internal/catalog Repository

// Repository defines the contract for book and author storage.
type Repository interface {
	// FindByTitle matches the whole title, ignoring case.
	FindByTitle(ctx context.Context, title string) ([]Book, error)
	FindAll(ctx context.Context) ([]Book, error)
	// FindByLanguage matches books whose language contains lang.
	FindByLanguage(ctx context.Context, lang string) ([]Book, error)

	FindAuthorsAliveInYear(ctx context.Context, year int) ([]Author, error)
	FindAuthorsBornInYear(ctx context.Context, year int) ([]Author, error)
	FindAuthorsDiedInYear(ctx context.Context, year int) ([]Author, error)

	// SaveBooks persists books in one transaction, reusing authors by name.
	// IDs are assigned to the given books.
	SaveBooks(ctx context.Context, books []Book) error

	CountBooks(ctx context.Context) (int, error)
	CountAuthors(ctx context.Context) (int, error)
}
