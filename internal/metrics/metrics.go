package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CatalogRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "literalura_catalog_requests_total",
		Help: "Total number of requests sent to the book catalog API",
	}, []string{"status"})

	CatalogRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "literalura_catalog_request_duration_seconds",
		Help:    "Duration of book catalog API requests in seconds",
		Buckets: prometheus.DefBuckets,
	})

	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "literalura_searches_total",
		Help: "Total number of title searches by outcome",
	}, []string{"outcome"})

	BooksSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "literalura_books_saved_total",
		Help: "Total number of books persisted from catalog searches",
	})
)

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
