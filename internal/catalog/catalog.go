package catalog

import (
	"fmt"
)

// Author is a book author. Authors are unique by name.
type Author struct {
	ID        string
	Name      string `validate:"required,max=512"`
	BirthYear *int
	DeathYear *int
}

// Book is a persisted catalog book. Every book has exactly one author.
type Book struct {
	ID            string
	Title         string `validate:"required,max=1024"`
	Language      string `validate:"required,langcode"`
	DownloadCount int    `validate:"gte=0"`
	Author        Author
}

// Lifespan formats the author's years as "(birth - death)", using "?" for
// unknown years.
func (a Author) Lifespan() string {
	return fmt.Sprintf("(%s - %s)", year(a.BirthYear), year(a.DeathYear))
}

func (a Author) String() string {
	return a.Name + " " + a.Lifespan()
}

func year(y *int) string {
	if y == nil {
		return "?"
	}
	return fmt.Sprint(*y)
}

// Stats holds store totals.
type Stats struct {
	Books   int
	Authors int
}
