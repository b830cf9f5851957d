package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"literalura/db"
	"literalura/internal/config"
	"literalura/internal/logger"
	"literalura/internal/storage"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

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

	goose.SetBaseFS(nil)
	goose.SetLogger(db.GooseLogger{Level: logrus.InfoLevel})
	if err := goose.SetDialect(store.Dialect()); err != nil {
		logrus.Fatalf("Failed to set dialect: %v", err)
	}

	dir := migrationsDir(store.Dialect())
	sqlDB := store.DB()

	switch *command {
	case "up":
		if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.DownContext(ctx, sqlDB, dir); err != nil {
			logrus.Fatalf("Failed to rollback migrations: %v", err)
		}
		fmt.Println("Migrations rolled back successfully")
	case "status":
		if err := goose.StatusContext(ctx, sqlDB, dir); err != nil {
			logrus.Fatalf("Failed to check migration status: %v", err)
		}
	case "create":
		if *name == "" {
			logrus.Fatal("Name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			logrus.Fatalf("Failed to create migration: %v", err)
		}
		fmt.Printf("Migration created: %s\n", *name)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s. Use: up, down, status, create\n", *command)
		os.Exit(2)
	}
}
