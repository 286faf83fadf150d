package rvec

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hupe1980/rvec/serialize"
	"gopkg.in/yaml.v3"
)

// Config is the file-based session configuration.
//
//	log_level: debug
//	log_format: json
//	compression: zstd
//	warning_sample_every: 100
//	warning_sample_interval: 10s
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
	// Compression used by Save: none, lz4 or zstd.
	Compression string `yaml:"compression"`
	// WarningSampleEvery logs every Nth coercion-warning event.
	WarningSampleEvery int `yaml:"warning_sample_every"`
	// WarningSampleInterval additionally logs a warning event when this much
	// time has passed since the last one. Zero disables the interval.
	WarningSampleInterval time.Duration `yaml:"warning_sample_interval"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Compression:        serialize.CompressionNone.String(),
		WarningSampleEvery: 1,
	}
}

// LoadConfig reads and validates a YAML configuration file. Missing keys keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates a YAML configuration.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format: unknown format %q", c.LogFormat))
	}
	if _, err := serialize.ParseCompression(c.Compression); err != nil {
		errs = append(errs, fmt.Errorf("compression: %w", err))
	}
	if c.WarningSampleEvery < 1 {
		errs = append(errs, fmt.Errorf("warning_sample_every: must be at least 1, got %d", c.WarningSampleEvery))
	}
	if c.WarningSampleInterval < 0 {
		errs = append(errs, fmt.Errorf("warning_sample_interval: negative duration %s", c.WarningSampleInterval))
	}
	return errors.Join(errs...)
}

// Level returns the slog level for LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// NewLogger builds the logger described by LogLevel and LogFormat.
func (c Config) NewLogger() (*Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(c.LogFormat, "json") {
		return NewJSONLogger(level), nil
	}
	return NewTextLogger(level), nil
}
