// Package config loads GoTokenize settings from defaults, a YAML file,
// GOTOKENIZE_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Defaults.
const (
	DefaultConfigFile   = "gotokenize.yaml"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	DefaultSegmenter    = "standard"
	DefaultOutput       = "text"
	DefaultAddr         = ":8080"
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 60 * time.Second
)

// EnvPrefix is the prefix of environment variables read by Load.
// GOTOKENIZE_STOP_WORDS__PATH maps to stop_words.path.
const EnvPrefix = "GOTOKENIZE_"

var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete application configuration.
type Config struct {
	LogLevel  string          `koanf:"log_level"`
	LogFormat string          `koanf:"log_format"`
	Segmenter string          `koanf:"segmenter"`
	Output    string          `koanf:"output"`
	StopWords StopWordsConfig `koanf:"stop_words"`
	Server    ServerConfig    `koanf:"server"`
}

// StopWordsConfig selects the stop-word set.
type StopWordsConfig struct {
	// Path to a text, YAML or compiled (.fst) list. Empty means no file.
	Path string `koanf:"path"`
	// English enables the built-in English list when Path is empty.
	English   bool     `koanf:"english"`
	Normalize bool     `koanf:"normalize"`
	Languages []string `koanf:"languages"`
	Watch     bool     `koanf:"watch"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Segmenter: DefaultSegmenter,
		Output:    DefaultOutput,
		Server: ServerConfig{
			Addr:         DefaultAddr,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		},
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log_format %q (want json or text)", ErrInvalidConfig, c.LogFormat)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output %q (want text or json)", ErrInvalidConfig, c.Output)
	}
	if c.Segmenter == "" {
		return fmt.Errorf("%w: segmenter is empty", ErrInvalidConfig)
	}
	if c.StopWords.Watch && c.StopWords.Path == "" {
		return fmt.Errorf("%w: stop_words.watch requires stop_words.path", ErrInvalidConfig)
	}
	return nil
}

// ParseLogLevel converts a level name to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, level)
	}
}
