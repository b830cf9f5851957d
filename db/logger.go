package db

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// GooseLogger sends goose output to logrus at Level. goose terminates its
// messages with a newline, which is trimmed.
type GooseLogger struct {
	Level logrus.Level
}

func (l GooseLogger) Printf(format string, v ...interface{}) {
	logrus.StandardLogger().Log(l.Level, trimMessage(format, v))
}

func (l GooseLogger) Fatalf(format string, v ...interface{}) {
	logrus.Fatal(trimMessage(format, v))
}

func trimMessage(format string, v []interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, v...), "\n")
}
