// Package logger configures logrus for the application and carries a
// per-workflow search id through context.
package logger

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const searchIDKey ctxKey = "searchId"

// SlowThreshold is the duration above which Track logs at warn level.
var SlowThreshold = 2 * time.Second

// Init sets the level and formatter of the standard logrus logger. Logs go
// to stderr so they never mix with console output.
func Init(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)

	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return nil
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	return nil
}

// For returns a log entry tagged with the search id stored in ctx, if any.
func For(ctx context.Context) *logrus.Entry {
	id := IDFrom(ctx)
	if id == "" {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logrus.WithField("search_id", id)
}

func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, searchIDKey, id)
}

func IDFrom(ctx context.Context) string {
	id, _ := ctx.Value(searchIDKey).(string)
	return id
}

// Track logs the duration of an operation when the returned func is called.
func Track(ctx context.Context, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx).WithField("duration", dur.String())

		if dur > SlowThreshold {
			entry.Warnf("%s completed (SLOW)", msg)
		} else {
			entry.Debugf("%s completed", msg)
		}
	}
}
