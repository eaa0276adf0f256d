package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/santara-lab/santara/pkg/utils/logging"
)

func TestJSONRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON, false)

	type cred struct {
		Authorization string
		APIKey        string `masq:"secret"`
		Plain         string
	}
	logger.Info("outbound request", "cred", cred{
		Authorization: "Bearer abc123",
		APIKey:        "hunter2",
		Plain:         "visible-value",
	})

	out := buf.String()
	gt.False(t, strings.Contains(out, "Bearer abc123"))
	gt.False(t, strings.Contains(out, "hunter2"))
	gt.True(t, strings.Contains(out, "visible-value"))
	gt.True(t, strings.Contains(out, "outbound request"))
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug, logging.FormatConsole, false)

	logger.Info("server ready", "addr", "127.0.0.1:8080")
	gt.True(t, strings.Contains(buf.String(), "server ready"))
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelWarn, logging.FormatJSON, false)

	logger.Info("should be dropped")
	logger.Warn("should be kept")

	out := buf.String()
	gt.False(t, strings.Contains(out, "should be dropped"))
	gt.True(t, strings.Contains(out, "should be kept"))
}

func TestUnsupportedFormatPanics(t *testing.T) {
	defer func() {
		gt.NotNil(t, recover())
	}()
	logging.New(&bytes.Buffer{}, slog.LevelInfo, logging.Format(99), false)
}
