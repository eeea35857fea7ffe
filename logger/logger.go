// Package logger builds zerolog loggers from declarative configuration.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`
	// Format is "json" or "console".
	Format string `yaml:"format" mapstructure:"format"`
	// Output is "stdout" or "stderr".
	Output string `yaml:"output" mapstructure:"output"`
}

// ApplyDefaults fills unset fields with usable defaults.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("logger: level: %w", err)
	}
	switch strings.ToLower(c.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logger: format must be json or console (got %q)", c.Format)
	}
	switch strings.ToLower(c.Output) {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("logger: output must be stdout or stderr (got %q)", c.Output)
	}
	return nil
}

// New builds a zerolog.Logger from cfg. Invalid levels fall back to info.
func New(cfg Config) zerolog.Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if strings.ToLower(cfg.Output) == "stdout" {
		out = os.Stdout
	}
	if strings.ToLower(cfg.Format) == "console" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
