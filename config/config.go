package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mrtguide/weights"
)

// Defaults.
const (
	DefaultPath      = "config.yml"
	DefaultDataPath  = "./data/StationMap.csv"
	DefaultLimit     = 1
	DefaultFormatter = "console"
	DefaultLogLevel  = "info"
	DefaultCacheSize = 128

	// DateLayout is the format of opened_by.
	DateLayout = "2006-01-02"
)

// LinesConfig overrides the line sets of the time-dependent cost policies.
type LinesConfig struct {
	PeakBusy   []string `yaml:"peak_busy" validate:"dive,len=2"`
	NightStop  []string `yaml:"night_stop" validate:"dive,len=2"`
	NightFast  []string `yaml:"night_fast" validate:"dive,len=2"`
	NormalFast []string `yaml:"normal_fast" validate:"dive,len=2"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	DataPath  string      `yaml:"data_path" validate:"required"`
	Limit     int         `yaml:"limit" validate:"gte=0"`
	Formatter string      `yaml:"formatter" validate:"omitempty,oneof=console styled json"`
	LogLevel  string      `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	CacheSize int         `yaml:"cache_size" validate:"gte=0"`
	OpenedBy  string      `yaml:"opened_by" validate:"omitempty,datetime=2006-01-02"`
	Lines     LinesConfig `yaml:"lines"`
}

// Default returns the configuration used when no file is present.
func Default() *AppConfig {
	return &AppConfig{
		DataPath:  DefaultDataPath,
		Limit:     DefaultLimit,
		Formatter: DefaultFormatter,
		LogLevel:  DefaultLogLevel,
		CacheSize: DefaultCacheSize,
	}
}

// Load reads and validates the YAML file at path. Keys absent from the file
// keep their defaults, and a missing file yields Default().
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates YAML bytes on top of the defaults.
func Parse(data []byte) (*AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Formatter == "" {
		cfg.Formatter = DefaultFormatter
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c *AppConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}

	return nil
}

// Weights returns the configured line sets, with unset ones taken from
// weights.DefaultLines.
func (c *AppConfig) Weights() weights.Lines {
	return weights.Lines{
		PeakBusy:   c.Lines.PeakBusy,
		NightStop:  c.Lines.NightStop,
		NightFast:  c.Lines.NightFast,
		NormalFast: c.Lines.NormalFast,
	}.Merge(weights.DefaultLines())
}

// OpenedByTime parses opened_by. ok is false when it is unset.
func (c *AppConfig) OpenedByTime() (t time.Time, ok bool, err error) {
	if c.OpenedBy == "" {
		return time.Time{}, false, nil
	}
	if t, err = time.Parse(DateLayout, c.OpenedBy); err != nil {
		return time.Time{}, false, fmt.Errorf("config: opened_by: %w", err)
	}

	return t, true, nil
}

// Level returns the slog level named by log_level, Info when unset or unknown.
func (c *AppConfig) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
