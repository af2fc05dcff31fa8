package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield
// the fallback.
func ParseLevel(level string, fallback zerolog.Level) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	}
	return fallback
}

// NewFromConfigValues creates a logger from plain level and format strings,
// as they appear in the configuration file.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level, cfg.Level)
	switch format {
	case "json", "console":
		cfg.Format = format
	case "text":
		cfg.Format = "console"
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// SHADE_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// SHADE_LOG_FORMAT: json, console, text (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("SHADE_LOG_LEVEL"), os.Getenv("SHADE_LOG_FORMAT"))
}
