package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"literalura/internal/catalog"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const rule = "----------------------------------------"

const languageHint = `Enter the desired language:
Portuguese (pt)
English (en)
Spanish (es)
French (fr)
German (de)
`

func (m *Menu) listBooks(ctx context.Context) error {
	books, err := m.catalog.Books(ctx)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Fprintln(m.out, "No books registered.")
		return nil
	}

	for _, b := range books {
		fmt.Fprintln(m.out, "----- BOOK -----")
		fmt.Fprintf(m.out, "Title: %s\n", b.Title)
		fmt.Fprintf(m.out, "Author: %s\n", b.Author.Name)
		fmt.Fprintf(m.out, "Language: %s\n", languageName(b.Language))
		fmt.Fprintf(m.out, "Downloads: %d\n", b.DownloadCount)
		fmt.Fprintln(m.out, "----------------")
	}

	stats, err := m.catalog.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Registered: %d book(s) by %d author(s)\n", stats.Books, stats.Authors)
	return nil
}

func (m *Menu) listAuthors(ctx context.Context) error {
	authors, err := m.catalog.Authors(ctx)
	if err != nil {
		return err
	}
	if len(authors) == 0 {
		fmt.Fprintln(m.out, "No authors registered.")
		return nil
	}
	for _, a := range authors {
		fmt.Fprintln(m.out, a.Name)
	}
	return nil
}

func (m *Menu) listAuthorsAlive(ctx context.Context) error {
	return m.listAuthorsByYear(ctx, "Authors alive in %d:", m.catalog.AuthorsAliveIn)
}

func (m *Menu) listAuthorsBorn(ctx context.Context) error {
	return m.listAuthorsByYear(ctx, "Authors born in %d:", m.catalog.AuthorsBornIn)
}

func (m *Menu) listAuthorsDied(ctx context.Context) error {
	return m.listAuthorsByYear(ctx, "Authors who died in %d:", m.catalog.AuthorsDiedIn)
}

func (m *Menu) listAuthorsByYear(ctx context.Context, header string, find func(context.Context, int) ([]catalog.Author, error)) error {
	line, err := m.in.Prompt("Enter a year: ")
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(m.out, "Invalid year!")
		return nil
	}

	authors, err := find(ctx, year)
	if err != nil {
		return err
	}
	if len(authors) == 0 {
		fmt.Fprintln(m.out, "No authors found.")
		return nil
	}

	fmt.Fprintf(m.out, header+"\n\n", year)
	for _, a := range authors {
		// Only authors with a known lifespan are listed.
		if a.BirthYear == nil || a.DeathYear == nil {
			continue
		}
		fmt.Fprintln(m.out, a.String())
	}
	return nil
}

func (m *Menu) listBooksByLanguage(ctx context.Context) error {
	fmt.Fprint(m.out, languageHint)
	lang, err := m.in.Prompt("Language: ")
	if err != nil {
		return err
	}

	books, err := m.catalog.BooksInLanguage(ctx, strings.TrimSpace(lang))
	if err != nil {
		return err
	}
	if len(books) == 0 {
		fmt.Fprintln(m.out, "No books found in the chosen language!")
		return nil
	}

	for _, b := range books {
		fmt.Fprintf(m.out, "Title: %s\n", b.Title)
		fmt.Fprintf(m.out, "Author: %s\n", b.Author.Name)
		fmt.Fprintf(m.out, "Language: %s\n", b.Language)
		fmt.Fprintln(m.out, rule)
	}
	return nil
}

// languageName renders a language code with its English name, e.g.
// "en (English)". Unknown codes are returned as is.
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", code, name)
}
