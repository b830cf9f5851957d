package gutendex

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"literalura/internal/logger"
	"literalura/internal/metrics"
)

// LoggingTransport logs and counts every outgoing catalog request.
type LoggingTransport struct {
	next http.RoundTripper
}

func NewLoggingTransport(next http.RoundTripper) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &LoggingTransport{next: next}
}

func (t *LoggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(r)

	duration := time.Since(start)
	metrics.CatalogRequestDuration.Observe(duration.Seconds())

	entry := logger.For(r.Context()).WithFields(logrus.Fields{
		"method":      r.Method,
		"url":         r.URL.String(),
		"duration_ms": duration.Milliseconds(),
	})
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues("error").Inc()
		entry.WithError(err).Warn("catalog.request")
		return nil, err
	}

	metrics.CatalogRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	entry.WithField("status", resp.StatusCode).Debug("catalog.request")
	return resp, nil
}
