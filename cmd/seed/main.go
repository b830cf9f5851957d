package main

import (
	"context"
	"fmt"

	"literalura/internal/catalog"
	"literalura/internal/config"
	"literalura/internal/logger"
	"literalura/internal/storage"

	"github.com/sirupsen/logrus"
)

func year(y int) *int { return &y }

// seedBooks are public domain titles as the catalog returns them.
var seedBooks = []catalog.Book{
	{Title: "Frankenstein; Or, The Modern Prometheus", Language: "en", DownloadCount: 98123,
		Author: catalog.Author{Name: "Shelley, Mary Wollstonecraft", BirthYear: year(1797), DeathYear: year(1851)}},
	{Title: "Pride and Prejudice", Language: "en", DownloadCount: 74000,
		Author: catalog.Author{Name: "Austen, Jane", BirthYear: year(1775), DeathYear: year(1817)}},
	{Title: "Emma", Language: "en", DownloadCount: 12000,
		Author: catalog.Author{Name: "Austen, Jane", BirthYear: year(1775), DeathYear: year(1817)}},
	{Title: "Dom Casmurro", Language: "pt", DownloadCount: 2300,
		Author: catalog.Author{Name: "Machado de Assis", BirthYear: year(1839), DeathYear: year(1908)}},
	{Title: "Don Quijote", Language: "es", DownloadCount: 15000,
		Author: catalog.Author{Name: "Cervantes Saavedra, Miguel de", BirthYear: year(1547), DeathYear: year(1616)}},
	{Title: "Les Misérables, Tome I: Fantine", Language: "fr", DownloadCount: 3100,
		Author: catalog.Author{Name: "Hugo, Victor", BirthYear: year(1802), DeathYear: year(1885)}},
	{Title: "Die Verwandlung", Language: "de", DownloadCount: 4400,
		Author: catalog.Author{Name: "Kafka, Franz", BirthYear: year(1883), DeathYear: year(1924)}},
	{Title: "Beowulf: An Anglo-Saxon Epic Poem", Language: "en", DownloadCount: 9000,
		Author: catalog.Author{Name: "Unknown"}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.Fatalf("Failed to configure logging: %v", err)
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	missing, err := missingBooks(ctx, store.Books, seedBooks)
	if err != nil {
		logrus.Fatalf("Failed to check existing books: %v", err)
	}
	if len(missing) == 0 {
		logrus.Info("Seed books already registered. Skipping.")
		return
	}

	if err := store.Books.SaveBooks(ctx, missing); err != nil {
		logrus.Fatalf("Failed to insert books: %v", err)
	}

	total, err := store.Books.CountBooks(ctx)
	if err != nil {
		logrus.Fatalf("Failed to count books: %v", err)
	}
	fmt.Printf("Inserted %d books, %d in store\n", len(missing), total)
}

// missingBooks returns the books whose title is not stored yet.
func missingBooks(ctx context.Context, repo catalog.Repository, books []catalog.Book) ([]catalog.Book, error) {
	var out []catalog.Book
	for _, b := range books {
		existing, err := repo.FindByTitle(ctx, b.Title)
		if err != nil {
			return nil, err
		}
		if len(existing) == 0 {
			out = append(out, b)
		}
	}
	return out, nil
}
