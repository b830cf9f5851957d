package gutendex

import (
	"fmt"
	"strings"
)

// Person is an author entry of a catalog record.
type Person struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
}

// BookResult is a single book of a /books response.
type BookResult struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Authors       []Person `json:"authors"`
	Languages     []string `json:"languages"`
	DownloadCount int      `json:"download_count"`
}

// PrimaryAuthor returns the first listed author, or a placeholder for
// anonymous works.
func (b BookResult) PrimaryAuthor() Person {
	if len(b.Authors) == 0 {
		return Person{Name: "Unknown"}
	}
	return b.Authors[0]
}

// Language returns the first language code of the record.
func (b BookResult) Language() string {
	if len(b.Languages) == 0 {
		return ""
	}
	return b.Languages[0]
}

func (b BookResult) String() string {
	a := b.PrimaryAuthor()
	return fmt.Sprintf("Title: %s\nAuthor: %s (%s - %s)\nLanguages: %s\nDownloads: %d",
		b.Title, a.Name, year(a.BirthYear), year(a.DeathYear),
		strings.Join(b.Languages, ", "), b.DownloadCount)
}

func year(y *int) string {
	if y == nil {
		return "?"
	}
	return fmt.Sprint(*y)
}
