package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chess-match-go/internal/config"
	"github.com/lgbarn/chess-match-go/internal/testutil"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" WARN ", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			testutil.AssertEqual(t, ParseLevel(tt.in), tt.want)
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Level: "info", Format: config.LogFormatJSON}

	logger, closeFn, err := NewWithWriter(cfg, &buf)
	testutil.AssertNoError(t, err)
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("checkmate", zap.String("winner", "White"))
	testutil.AssertNoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 1, "debug entry should be filtered")

	var entry map[string]interface{}
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	testutil.AssertEqual(t, entry["msg"], "checkmate")
	testutil.AssertEqual(t, entry["level"], "info")
	testutil.AssertEqual(t, entry["winner"], "White")
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := NewWithWriter(config.LogConfig{Level: "warn", Format: config.LogFormatConsole}, &buf)
	testutil.AssertNoError(t, err)
	defer closeFn()

	logger.Warn("rejected move into check")
	_ = logger.Sync()

	testutil.AssertContains(t, buf.String(), " | WARN | rejected move into check")
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "match.log")
	cfg := config.LogConfig{Level: "debug", Format: config.LogFormatJSON, File: path, Quiet: true}

	logger, closeFn, err := New(cfg)
	testutil.AssertNoError(t, err)
	logger.Debug("move performed")
	_ = logger.Sync()
	testutil.AssertNoError(t, closeFn())

	raw, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(raw), `"msg":"move performed"`)
}

func TestNew_InvalidConfig(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud", Format: config.LogFormatConsole})
	if err == nil {
		t.Error("New() with unknown level should fail")
	}
}

func TestNew_QuietWithoutFileIsNop(t *testing.T) {
	logger, _, err := New(config.LogConfig{Level: "info", Format: config.LogFormatConsole, Quiet: true})
	testutil.AssertNoError(t, err)
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("quiet logger without a file should be a no-op")
	}
}
