package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const sqliteBookSelect = `
	SELECT b.id, b.title, b.language, b.download_count,
	       a.id, a.name, a.birth_year, a.death_year
	FROM books b
	JOIN authors a ON a.id = b.author_id`

const sqliteAuthorSelect = `SELECT id, name, birth_year, death_year FROM authors`

// SQLiteRepo implements Repository on database/sql with the sqlite3 driver.
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

func (r *SQLiteRepo) FindByTitle(ctx context.Context, title string) ([]Book, error) {
	return r.queryBooks(ctx, sqliteBookSelect+` WHERE ulower(b.title) = ulower(?) ORDER BY b.rowid`, title)
}

func (r *SQLiteRepo) FindAll(ctx context.Context) ([]Book, error) {
	return r.queryBooks(ctx, sqliteBookSelect+` ORDER BY b.rowid`)
}

func (r *SQLiteRepo) FindByLanguage(ctx context.Context, lang string) ([]Book, error) {
	// instr is case-sensitive and treats % and _ literally.
	return r.queryBooks(ctx, sqliteBookSelect+` WHERE instr(b.language, ?) > 0 ORDER BY b.rowid`, lang)
}

func (r *SQLiteRepo) FindAuthorsAliveInYear(ctx context.Context, year int) ([]Author, error) {
	return r.queryAuthors(ctx, sqliteAuthorSelect+`
		WHERE birth_year <= ? AND (death_year IS NULL OR death_year >= ?)
		ORDER BY rowid`, year, year)
}

func (r *SQLiteRepo) FindAuthorsBornInYear(ctx context.Context, year int) ([]Author, error) {
	return r.queryAuthors(ctx, sqliteAuthorSelect+`
		WHERE birth_year = ? AND (death_year IS NULL OR death_year >= ?)
		ORDER BY rowid`, year, year)
}

func (r *SQLiteRepo) FindAuthorsDiedInYear(ctx context.Context, year int) ([]Author, error) {
	return r.queryAuthors(ctx, sqliteAuthorSelect+`
		WHERE birth_year <= ? AND death_year = ?
		ORDER BY rowid`, year, year)
}

func (r *SQLiteRepo) SaveBooks(ctx context.Context, books []Book) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	authorIDs := make(map[string]string)
	for i := range books {
		b := &books[i]

		authorID, ok := authorIDs[b.Author.Name]
		if !ok {
			authorID, err = r.getOrCreateAuthor(ctx, tx, b.Author)
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
			VALUES (?, ?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, bookSQL, b.ID, b.Title, b.Language, b.DownloadCount, authorID); err != nil {
			return fmt.Errorf("insert book %q: %w", b.Title, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRepo) getOrCreateAuthor(ctx context.Context, tx *sql.Tx, a Author) (string, error) {
	const insertSQL = `
		INSERT INTO authors (id, name, birth_year, death_year)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (name) DO NOTHING`
	if _, err := tx.ExecContext(ctx, insertSQL, uuid.NewString(), a.Name, nullYear(a.BirthYear), nullYear(a.DeathYear)); err != nil {
		return "", fmt.Errorf("insert author %q: %w", a.Name, err)
	}

	var id string
	if err := tx.QueryRowContext(ctx, `SELECT id FROM authors WHERE name = ?`, a.Name).Scan(&id); err != nil {
		return "", fmt.Errorf("lookup author %q: %w", a.Name, err)
	}
	return id, nil
}

func (r *SQLiteRepo) CountBooks(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&count)
	return count, err
}

func (r *SQLiteRepo) CountAuthors(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM authors").Scan(&count)
	return count, err
}

func (r *SQLiteRepo) queryBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var (
			b           Book
			birth, dead sql.NullInt64
		)
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Language, &b.DownloadCount,
			&b.Author.ID, &b.Author.Name, &birth, &dead,
		); err != nil {
			return nil, err
		}
		b.Author.BirthYear = yearPtr(birth)
		b.Author.DeathYear = yearPtr(dead)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) queryAuthors(ctx context.Context, query string, args ...any) ([]Author, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Author
	for rows.Next() {
		var (
			a           Author
			birth, dead sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &a.Name, &birth, &dead); err != nil {
			return nil, err
		}
		a.BirthYear = yearPtr(birth)
		a.DeathYear = yearPtr(dead)
		out = append(out, a)
	}
	return out, rows.Err()
}

func nullYear(y *int) sql.NullInt64 {
	if y == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*y), Valid: true}
}

func yearPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	y := int(n.Int64)
	return &y
}
