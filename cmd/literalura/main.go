package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"literalura/internal/catalog"
	"literalura/internal/config"
	"literalura/internal/console"
	"literalura/internal/ingest"
	"literalura/internal/logger"
	"literalura/internal/metrics"
	"literalura/internal/platform/gutendex"
	"literalura/internal/storage"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Error("Failed to load configuration")
		return 1
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Error("Failed to configure logging")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	openCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	store, err := storage.Open(openCtx, cfg.Database)
	cancel()
	if err != nil {
		logrus.WithError(err).Errorf("Cannot open database (%s)", redactDSN(cfg.Database.DSN))
		return 1
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		logrus.WithError(err).Error("Failed to migrate database")
		return 1
	}
	logrus.WithField("driver", cfg.Database.Driver).Debug("Database ready")

	var services []func(context.Context) error
	if cfg.Metrics.Addr != "" {
		services = append(services, func(ctx context.Context) error {
			return metrics.Serve(ctx, cfg.Metrics.Addr)
		})
	}

	client := gutendex.NewClient(gutendex.Config{
		BaseURL:    cfg.Catalog.BaseURL,
		UserAgent:  cfg.Catalog.UserAgent,
		Timeout:    cfg.Catalog.Timeout,
		RPS:        cfg.Catalog.RPS,
		MaxRetries: cfg.Catalog.MaxRetries,
		Progress:   os.Stderr,
	})
	search := ingest.NewService(client, store.Books, store.Runs)

	reader := console.NewTerminalReader(cfg.Console.HistoryFile)
	defer reader.Close()

	menu := console.NewMenu(reader, os.Stdout, search, catalog.NewService(store.Books))
	if err := runSession(ctx, menu, services...); err != nil {
		logrus.WithError(err).Error("Console stopped")
		return 1
	}
	return 0
}

type session interface {
	Run(ctx context.Context) error
}

// runSession runs s until it returns, with services running alongside. A
// failing service is logged and does not end the session. Services are
// cancelled once s returns.
func runSession(ctx context.Context, s session, services ...func(context.Context) error) error {
	svcCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(svcCtx)
	for _, svc := range services {
		svc := svc
		g.Go(func() error {
			return svc(gctx)
		})
	}

	runErr := s.Run(ctx)
	cancel()

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Background service failed")
	}
	return runErr
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
