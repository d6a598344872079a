package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerNop(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(LogConfig{}, false, &buf)
	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("nop logger wrote %q", buf.String())
	}
}

func TestNewLoggerConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(LogConfig{Level: zapcore.WarnLevel}, true, &buf)
	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifer.log")
	logger := NewLogger(LogConfig{File: path}, false)
	logger.Info("generation done")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"generation done"`) {
		t.Fatalf("log file = %q", data)
	}
}
