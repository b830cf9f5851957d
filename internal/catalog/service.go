package catalog

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Books(ctx context.Context) ([]Book, error) {
	return s.repo.FindAll(ctx)
}

// Authors returns the authors of all registered books, distinct by name, in
// the order their first book was registered.
func (s *Service) Authors(ctx context.Context) ([]Author, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(books))
	var out []Author
	for _, b := range books {
		if seen[b.Author.Name] {
			continue
		}
		seen[b.Author.Name] = true
		out = append(out, b.Author)
	}
	return out, nil
}

func (s *Service) AuthorsAliveIn(ctx context.Context, year int) ([]Author, error) {
	return s.repo.FindAuthorsAliveInYear(ctx, year)
}

func (s *Service) AuthorsBornIn(ctx context.Context, year int) ([]Author, error) {
	return s.repo.FindAuthorsBornInYear(ctx, year)
}

func (s *Service) AuthorsDiedIn(ctx context.Context, year int) ([]Author, error) {
	return s.repo.FindAuthorsDiedInYear(ctx, year)
}

func (s *Service) BooksInLanguage(ctx context.Context, lang string) ([]Book, error) {
	return s.repo.FindByLanguage(ctx, lang)
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	books, err := s.repo.CountBooks(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count books: %w", err)
	}
	authors, err := s.repo.CountAuthors(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count authors: %w", err)
	}
	return Stats{Books: books, Authors: authors}, nil
}
