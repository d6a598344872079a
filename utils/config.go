package utils

import (
	"slices"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/sheikhrachel/lifer/model"
)

const (
	AppName   = "lifer"
	envPrefix = "LIFER"

	RendererScreen = "screen"
	RendererText   = "text"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `mapstructure:"width"`
	Height              int           `mapstructure:"height"`
	Lifespan            time.Duration `mapstructure:"lifespan"`
	FrameRate           time.Duration `mapstructure:"frame_rate"`
	MaxGenerations      int           `mapstructure:"max_generations"`
	Seed                int64         `mapstructure:"seed"`
	Pattern             string        `mapstructure:"pattern"`
	Renderer            string        `mapstructure:"renderer"`
	LiveGlyph           string        `mapstructure:"live_glyph"`
	DeadGlyph           string        `mapstructure:"dead_glyph"`
	Workers             int           `mapstructure:"workers"`
	AutoRestart         bool          `mapstructure:"auto_restart"`
	StagnationThreshold int           `mapstructure:"stagnation_threshold"`
	Log                 LogConfig     `mapstructure:"log"`
}

// LogConfig controls where and how much the game logs
type LogConfig struct {
	Level      zapcore.Level `mapstructure:"level"`
	File       string        `mapstructure:"file"`
	MaxSizeMB  int           `mapstructure:"max_size_mb"`
	MaxBackups int           `mapstructure:"max_backups"`
	MaxAgeDays int           `mapstructure:"max_age_days"`
	Compress   bool          `mapstructure:"compress"`
	Dev        bool          `mapstructure:"dev"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              20,
		Lifespan:            60 * time.Second,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      0,
		Seed:                0,
		Pattern:             model.RandomPattern,
		Renderer:            RendererScreen,
		LiveGlyph:           "#",
		DeadGlyph:           " ",
		Workers:             0,
		AutoRestart:         false,
		StagnationThreshold: 5,
		Log: LogConfig{
			Level:      zapcore.InfoLevel,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("lifespan", d.Lifespan)
	v.SetDefault("frame_rate", d.FrameRate)
	v.SetDefault("max_generations", d.MaxGenerations)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("pattern", d.Pattern)
	v.SetDefault("renderer", d.Renderer)
	v.SetDefault("live_glyph", d.LiveGlyph)
	v.SetDefault("dead_glyph", d.DeadGlyph)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("auto_restart", d.AutoRestart)
	v.SetDefault("stagnation_threshold", d.StagnationThreshold)
	v.SetDefault("log.level", d.Log.Level.String())
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("log.dev", d.Log.Dev)
}

// flagBindings maps config keys to command line flags
var flagBindings = map[string]string{
	"width":           "width",
	"height":          "height",
	"max_generations": "generations",
	"frame_rate":      "frame-rate",
	"seed":            "seed",
	"pattern":         "pattern",
	"renderer":        "renderer",
	"workers":         "workers",
	"auto_restart":    "auto-restart",
	"log.level":       "log-level",
	"log.file":        "log-file",
}

func newFlagSet() *pflag.FlagSet {
	d := DefaultConfig()
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.IntP("lifespan", "l", int(d.Lifespan/time.Second), "lifespan in seconds, 0 runs until interrupted")
	fs.Int("width", d.Width, "grid width in cells")
	fs.Int("height", d.Height, "grid height in cells")
	fs.Int("generations", d.MaxGenerations, "stop after this many generations, 0 for no limit")
	fs.Duration("frame-rate", d.FrameRate, "delay between generations")
	fs.Int64("seed", d.Seed, "random seed, 0 picks one from the clock")
	fs.String("pattern", d.Pattern, "initial pattern: "+strings.Join(append([]string{model.RandomPattern}, model.PatternNames()...), ", "))
	fs.String("renderer", d.Renderer, "renderer: screen or text")
	fs.Int("workers", d.Workers, "goroutines per generation, 0 for one per CPU")
	fs.Bool("auto-restart", d.AutoRestart, "reseed instead of stopping when the grid stagnates")
	fs.String("log-level", d.Log.Level.String(), "log level")
	fs.String("log-file", d.Log.File, "write JSON logs to this file")
	return fs
}

// LoadConfig layers defaults, an optional config file, LIFER_* environment
// variables and command line flags, in increasing order of precedence
func LoadConfig(args []string) (Config, error) {
	var config Config

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[LoadConfig] failed to parse flags")
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range flagBindings {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to bind flag: %+v", name)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", path)
		}
	}

	// lifespan is given in whole seconds on the command line
	if fs.Changed("lifespan") {
		secs, _ := fs.GetInt("lifespan")
		v.Set("lifespan", time.Duration(secs)*time.Second)
	}

	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&config, hooks); err != nil {
		return config, errors.Wrap(err, "[LoadConfig] failed to unmarshal config")
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate rejects configurations the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Config.Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Lifespan < 0:
		return errors.Errorf("[Config.Validate] negative lifespan %v", c.Lifespan)
	case c.FrameRate < 0:
		return errors.Errorf("[Config.Validate] negative frame rate %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Config.Validate] negative generation limit %d", c.MaxGenerations)
	case c.Workers < 0:
		return errors.Errorf("[Config.Validate] negative worker count %d", c.Workers)
	case c.StagnationThreshold < 1:
		return errors.Errorf("[Config.Validate] stagnation threshold must be positive, got %d", c.StagnationThreshold)
	case c.Renderer != RendererScreen && c.Renderer != RendererText:
		return errors.Errorf("[Config.Validate] unknown renderer %q", c.Renderer)
	case len([]rune(c.LiveGlyph)) != 1 || len([]rune(c.DeadGlyph)) != 1:
		return errors.Errorf("[Config.Validate] glyphs must be single characters, got %q and %q", c.LiveGlyph, c.DeadGlyph)
	}
	if c.Pattern != model.RandomPattern && !slices.Contains(model.PatternNames(), c.Pattern) {
		return errors.Errorf("[Config.Validate] unknown pattern %q", c.Pattern)
	}
	return nil
}
