package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgBookSelect = `
	SELECT b.id::text, b.title, b.language, b.download_count,
	       a.id::text, a.name, a.birth_year, a.death_year
	FROM books b
	JOIN authors a ON a.id = b.author_id`

const pgAuthorSelect = `SELECT id::text, name, birth_year, death_year FROM authors`

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) FindByTitle(ctx context.Context, title string) ([]Book, error) {
	return r.queryBooks(ctx, pgBookSelect+` WHERE LOWER(b.title) = LOWER($1) ORDER BY b.seq`, title)
}

func (r *PostgresRepo) FindAll(ctx context.Context) ([]Book, error) {
	return r.queryBooks(ctx, pgBookSelect+` ORDER BY b.seq`)
}

func (r *PostgresRepo) FindByLanguage(ctx context.Context, lang string) ([]Book, error) {
	return r.queryBooks(ctx, pgBookSelect+` WHERE strpos(b.language, $1) > 0 ORDER BY b.seq`, lang)
}

func (r *PostgresRepo) FindAuthorsAliveInYear(ctx context.Context, year int) ([]Author, error) {
	return r.queryAuthors(ctx, pgAuthorSelect+`
		WHERE birth_year <= $1 AND (death_year IS NULL OR death_year >= $1)
		ORDER BY seq`, year)
}

func (r *PostgresRepo) FindAuthorsBornInYear(ctx context.Context, year int) ([]Author, error) {
	return r.queryAuthors(ctx, pgAuthorSelect+`
		WHERE birth_year = $1 AND (death_year IS NULL OR death_year >= $1)
		ORDER BY seq`, year)
}

func (r *PostgresRepo) FindAuthorsDiedInYear(ctx context.Context, year int) ([]Author, error) {
	return r.queryAuthors(ctx, pgAuthorSelect+`
		WHERE birth_year <= $1 AND death_year = $1
		ORDER BY seq`, year)
}

func (r *PostgresRepo) SaveBooks(ctx context.Context, books []Book) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	authorIDs := make(map[string]string)
	for i := range books {
		b := &books[i]

		authorID, ok := authorIDs[b.Author.Name]
		if !ok {
			authorID, err = getOrCreateAuthor(ctx, tx, b.Author)
			if err != nil {
				return err
			}
			authorIDs[b.Author.Name] = authorID
		}
		b.Author.ID = authorID
		if b.ID == "" {
			b.ID = uuid.NewString()
		}

		const bookSQL = `
			INSERT INTO books (id, title, language, download_count, author_id)
			VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.Exec(ctx, bookSQL, b.ID, b.Title, b.Language, b.DownloadCount, authorID); err != nil {
			return fmt.Errorf("insert book %q: %w", b.Title, err)
		}
	}

	return tx.Commit(ctx)
}

func getOrCreateAuthor(ctx context.Context, tx pgx.Tx, a Author) (string, error) {
	const insertSQL = `
		INSERT INTO authors (id, name, birth_year, death_year)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING`
	if _, err := tx.Exec(ctx, insertSQL, uuid.NewString(), a.Name, a.BirthYear, a.DeathYear); err != nil {
		return "", fmt.Errorf("insert author %q: %w", a.Name, err)
	}

	var id string
	if err := tx.QueryRow(ctx, `SELECT id::text FROM authors WHERE name = $1`, a.Name).Scan(&id); err != nil {
		return "", fmt.Errorf("lookup author %q: %w", a.Name, err)
	}
	return id, nil
}

func (r *PostgresRepo) CountBooks(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&count)
	return count, err
}

func (r *PostgresRepo) CountAuthors(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM authors").Scan(&count)
	return count, err
}

func (r *PostgresRepo) queryBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Language, &b.DownloadCount,
			&b.Author.ID, &b.Author.Name, &b.Author.BirthYear, &b.Author.DeathYear,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) queryAuthors(ctx context.Context, query string, args ...any) ([]Author, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Author
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.Name, &a.BirthYear, &a.DeathYear); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
