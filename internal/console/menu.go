// Package console implements the interactive menu of literalura.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"strings"

	"literalura/internal/catalog"
	"literalura/internal/ingest"
	"literalura/internal/logger"

	"github.com/google/uuid"
)

const menuText = `
                 Menu
       1- Search books by title
       2- List registered books
       3- List registered authors
       4- List authors alive in a given year
       5- List authors born in a given year
       6- List authors by year of death
       7- List books in a given language
       0- Exit
`

type Searcher interface {
	Search(ctx context.Context, term string) (*ingest.Result, error)
}

type Menu struct {
	in      LineReader
	out     io.Writer
	search  Searcher
	catalog *catalog.Service
}

func NewMenu(in LineReader, out io.Writer, search Searcher, cat *catalog.Service) *Menu {
	return &Menu{
		in:      in,
		out:     out,
		search:  search,
		catalog: cat,
	}
}

type action struct {
	name   string
	errMsg string
	run    func(ctx context.Context) error
}

func (m *Menu) actions() map[int]action {
	return map[int]action{
		1: {"search", "Error searching books", m.searchByTitle},
		2: {"list books", "Error listing books", m.listBooks},
		3: {"list authors", "Error listing authors", m.listAuthors},
		4: {"authors alive", "Error listing authors", m.listAuthorsAlive},
		5: {"authors born", "Error listing authors", m.listAuthorsBorn},
		6: {"authors died", "Error listing authors", m.listAuthorsDied},
		7: {"books by language", "Error listing books", m.listBooksByLanguage},
	}
}

// Run shows the menu and dispatches commands until the user picks 0 or the
// input ends.
func (m *Menu) Run(ctx context.Context) error {
	actions := m.actions()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(m.out, menuText)

		line, err := m.in.Prompt("Choose an option: ")
		if errors.Is(err, io.EOF) {
			m.goodbye()
			return nil
		}
		if err != nil {
			return err
		}

		opt, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.out, "Invalid option!")
			continue
		}
		if opt == 0 {
			m.goodbye()
			return nil
		}

		a, ok := actions[opt]
		if !ok {
			fmt.Fprintln(m.out, "Invalid option!")
			continue
		}
		if err := m.guard(ctx, a); errors.Is(err, io.EOF) {
			m.goodbye()
			return nil
		}
	}
}

func (m *Menu) goodbye() {
	fmt.Fprintln(m.out, "Program finished. Thanks for using literalura!")
}

// guard runs a under its own search id and reduces any failure, panics
// included, to a single line on the console. End of input is passed on.
func (m *Menu) guard(ctx context.Context, a action) (err error) {
	ctx = logger.ContextWithID(ctx, uuid.NewString())

	defer func() {
		if p := recover(); p != nil {
			logger.For(ctx).WithField("stack", string(debug.Stack())).Errorf("panic recovered in %s: %v", a.name, p)
			fmt.Fprintf(m.out, "%s: %v\n", a.errMsg, p)
			err = nil
		}
	}()

	err = a.run(ctx)
	if err == nil || errors.Is(err, io.EOF) {
		return err
	}
	logger.For(ctx).WithError(err).Warnf("%s failed", a.name)
	fmt.Fprintf(m.out, "%s: %v\n", a.errMsg, err)
	return nil
}

func (m *Menu) searchByTitle(ctx context.Context) error {
	term, err := m.in.Prompt("Enter the book title: ")
	if err != nil {
		return err
	}

	res, err := m.search.Search(ctx, term)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Catalog URL: %s\n", res.URL)

	switch res.Outcome {
	case ingest.StatusEmpty:
		fmt.Fprintln(m.out, "The catalog response is empty.")
		return nil
	case ingest.StatusNotFound:
		fmt.Fprintln(m.out, "Could not find the requested book.")
		return nil
	}

	if res.Existing > 0 {
		fmt.Fprintln(m.out, "Removing duplicate books already registered in the database...")
	}
	if res.Outcome == ingest.StatusDuplicate {
		fmt.Fprintln(m.out, "The books are already registered in the database!")
		return nil
	}

	fmt.Fprintf(m.out, "Saved %d new book(s) successfully!\n", res.Saved)
	fmt.Fprintln(m.out, "Books found:")
	for _, b := range res.Books {
		fmt.Fprintf(m.out, "%s\n\n", b)
	}
	return nil
}
