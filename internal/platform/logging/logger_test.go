package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Formats(t *testing.T) {
	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{
			format: "json",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, `"service_name":"costanza-quotes"`)
				assert.Contains(t, out, `"service_version":"1.2.3"`)
				assert.Contains(t, out, `"character":"George Costanza"`)
			},
		},
		{
			format: "text",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "service_name=costanza-quotes")
				assert.Contains(t, out, `character="George Costanza"`)
			},
		},
		{
			format: "pretty",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "costanza-quotes")
			},
		},
		{
			format: "unknown falls back to json",
			check: func(t *testing.T, out string) {
				assert.True(t, strings.HasPrefix(out, "{"), out)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&Config{
				Level:   "info",
				Format:  strings.Fields(tt.format)[0],
				Service: "costanza-quotes",
				Version: "1.2.3",
			}, &buf)

			logger.Info("random quote served", slog.String("character", "George Costanza"))

			out := buf.String()
			assert.Contains(t, out, "random quote served")
			tt.check(t, out)
		})
	}
}

func TestNewWithWriter_RollingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quotes.log")

	var console bytes.Buffer
	logger := NewWithWriter(&Config{
		Level:  "info",
		Format: "pretty",
		File: FileConfig{
			Enabled:    true,
			Path:       path,
			MaxSizeMB:  1,
			MaxBackups: 1,
			MaxAgeDays: 1,
		},
	}, &console)

	logger.With(slog.String("password", "bosco")).Info("schema ready", slog.String("dialect", "sqlite"))
	logger.Debug("below the configured level")

	assert.Contains(t, console.String(), "schema ready")

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	// The file is always JSON, whatever the console format.
	assert.Contains(t, string(content), `"msg":"schema ready"`)
	assert.Contains(t, string(content), `"dialect":"sqlite"`)
	assert.NotContains(t, string(content), "below the configured level")

	for _, out := range []string{console.String(), string(content)} {
		assert.NotContains(t, out, "bosco")
	}
}

func TestNewWithWriter_TraceLevel(t *testing.T) {
	tests := []struct {
		level   string
		visible bool
	}{
		{level: "trace", visible: true},
		{level: "debug", visible: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&Config{Level: tt.level, Format: "json"}, &buf)

			logger.Log(context.Background(), LevelTrace, "query executed", slog.String("sql", "SELECT 1"))

			if tt.visible {
				assert.Contains(t, buf.String(), "query executed")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(input))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want log.Level
	}{
		{in: LevelTrace, want: log.DebugLevel},
		{in: slog.LevelDebug, want: log.DebugLevel},
		{in: slog.LevelInfo, want: log.InfoLevel},
		{in: slog.LevelInfo + 2, want: log.InfoLevel},
		{in: slog.LevelWarn, want: log.WarnLevel},
		{in: slog.LevelError, want: log.ErrorLevel},
		{in: slog.Level(12), want: log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, slogToCharmLevel(tt.in))
		})
	}
}
