package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config != DefaultConfig() {
		t.Fatalf("config = %+v, want %+v", config, DefaultConfig())
	}
}

func TestLoadConfigFlags(t *testing.T) {
	config, err := LoadConfig([]string{
		"-l", "5",
		"--width", "12",
		"--height=7",
		"--frame-rate", "20ms",
		"--generations", "30",
		"--pattern", "glider",
		"--renderer", "text",
		"--seed", "99",
		"--log-level", "debug",
	})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	switch {
	case config.Lifespan != 5*time.Second:
		t.Errorf("Lifespan = %v", config.Lifespan)
	case config.Width != 12 || config.Height != 7:
		t.Errorf("size = %dx%d", config.Width, config.Height)
	case config.FrameRate != 20*time.Millisecond:
		t.Errorf("FrameRate = %v", config.FrameRate)
	case config.MaxGenerations != 30:
		t.Errorf("MaxGenerations = %d", config.MaxGenerations)
	case config.Pattern != "glider" || config.Renderer != RendererText:
		t.Errorf("pattern/renderer = %q/%q", config.Pattern, config.Renderer)
	case config.Seed != 99:
		t.Errorf("Seed = %d", config.Seed)
	case config.Log.Level != zapcore.DebugLevel:
		t.Errorf("Log.Level = %v", config.Log.Level)
	}
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("LIFER_WIDTH", "33")
	t.Setenv("LIFER_HEIGHT", "11")
	t.Setenv("LIFER_LOG_LEVEL", "warn")

	config, err := LoadConfig([]string{"--height", "15"})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 33 {
		t.Errorf("Width = %d, want 33 from env", config.Width)
	}
	if config.Height != 15 {
		t.Errorf("Height = %d, want flag to beat env", config.Height)
	}
	if config.Log.Level != zapcore.WarnLevel {
		t.Errorf("Log.Level = %v, want warn", config.Log.Level)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifer.yaml")
	data := strings.Join([]string{
		"width: 40",
		"height: 10",
		"lifespan: 2m",
		"frame_rate: 50ms",
		"pattern: toad",
		"auto_restart: true",
		"log:",
		"  level: error",
		"  file: /tmp/lifer.log",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig([]string{"--config", path, "--width", "41"})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 41 || config.Height != 10 {
		t.Errorf("size = %dx%d, want 41x10", config.Width, config.Height)
	}
	if config.Lifespan != 2*time.Minute || config.FrameRate != 50*time.Millisecond {
		t.Errorf("durations = %v, %v", config.Lifespan, config.FrameRate)
	}
	if config.Pattern != "toad" || !config.AutoRestart {
		t.Errorf("pattern = %q, auto restart = %v", config.Pattern, config.AutoRestart)
	}
	if config.Log.Level != zapcore.ErrorLevel || config.Log.File != "/tmp/lifer.log" {
		t.Errorf("log = %+v", config.Log)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatal("missing config file accepted")
	}
}

func TestLoadConfigRejects(t *testing.T) {
	tests := map[string][]string{
		"zero width":     {"--width", "0"},
		"negative span":  {"--lifespan=-1"},
		"bad renderer":   {"--renderer", "opengl"},
		"bad pattern":    {"--pattern", "gosper"},
		"bad log level":  {"--log-level", "loud"},
		"unknown flag":   {"--colour"},
		"negative limit": {"--generations", "-3"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(args); err == nil {
				t.Fatalf("LoadConfig(%v) succeeded", args)
			}
		})
	}
}

func TestValidateGlyphs(t *testing.T) {
	config := DefaultConfig()
	config.LiveGlyph = "██"
	if err := config.Validate(); err == nil {
		t.Fatal("two-rune glyph accepted")
	}
	config.LiveGlyph = "█"
	if err := config.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
