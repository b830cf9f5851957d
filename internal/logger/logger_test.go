package logger

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(prev) })
	return &buf
}

func TestInit(t *testing.T) {
	require.NoError(t, Init("debug", "json"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	require.NoError(t, Init("info", "text"))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	assert.Error(t, Init("loud", "text"))
}

func TestFor_CarriesSearchID(t *testing.T) {
	require.NoError(t, Init("info", "text"))
	buf := captureLogs(t)

	ctx := ContextWithID(context.Background(), "abc-123")
	For(ctx).Info("hello")

	assert.Contains(t, buf.String(), "search_id=abc-123")
	assert.Equal(t, "abc-123", IDFrom(ctx))
	assert.Empty(t, IDFrom(context.Background()))
}

func TestTrack_WarnsWhenSlow(t *testing.T) {
	require.NoError(t, Init("info", "text"))
	buf := captureLogs(t)

	old := SlowThreshold
	SlowThreshold = time.Nanosecond
	t.Cleanup(func() { SlowThreshold = old })

	done := Track(context.Background(), "catalog fetch")
	time.Sleep(time.Millisecond)
	done()

	assert.Contains(t, buf.String(), "catalog fetch completed (SLOW)")
}
