// Package config loads flowpipe settings from YAML files, a .env file, and
// environment variables.
//
// Environment variables use the FLOWPIPE_ prefix with underscores for
// nesting:
//
//	FLOWPIPE_READ_BUFFER=64
//	FLOWPIPE_PROCESS_BUFFER=64
//	FLOWPIPE_LOG_LEVEL=debug
//
// File values are overridden by environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fxsml/flowpipe/logger"
)

// Settings holds the file- and environment-configurable knobs of a
// pipeline deployment. Executors and handlers are code, not configuration,
// and are wired up by the caller.
type Settings struct {
	// ReadBuffer is the source → processor buffer capacity.
	ReadBuffer int `mapstructure:"read_buffer"`
	// ProcessBuffer is the processor → sink buffer capacity.
	ProcessBuffer int `mapstructure:"process_buffer"`

	// ReadWorkers, ProcessWorkers, and WriteWorkers size the per-stage
	// executor pools.
	ReadWorkers    int `mapstructure:"read_workers"`
	ProcessWorkers int `mapstructure:"process_workers"`
	WriteWorkers   int `mapstructure:"write_workers"`

	// Log configures the logger package.
	Log logger.Config `mapstructure:"log"`
}

// ApplyDefaults fills unset fields with usable defaults.
func (s *Settings) ApplyDefaults() {
	if s.ReadBuffer == 0 {
		s.ReadBuffer = 64
	}
	if s.ProcessBuffer == 0 {
		s.ProcessBuffer = 64
	}
	if s.ReadWorkers == 0 {
		s.ReadWorkers = 1
	}
	if s.ProcessWorkers == 0 {
		s.ProcessWorkers = 1
	}
	if s.WriteWorkers == 0 {
		s.WriteWorkers = 1
	}
	s.Log.ApplyDefaults()
}

// Validate reports the first invalid field.
func (s *Settings) Validate() error {
	if s.ReadBuffer < 0 {
		return fmt.Errorf("config: read_buffer must be >= 0 (got %d)", s.ReadBuffer)
	}
	if s.ProcessBuffer < 0 {
		return fmt.Errorf("config: process_buffer must be >= 0 (got %d)", s.ProcessBuffer)
	}
	for name, v := range map[string]int{
		"read_workers":    s.ReadWorkers,
		"process_workers": s.ProcessWorkers,
		"write_workers":   s.WriteWorkers,
	} {
		if v < 1 {
			return fmt.Errorf("config: %s must be >= 1 (got %d)", name, v)
		}
	}
	return s.Log.Validate()
}

// Load reads settings from the YAML file at path (optional; pass "" to
// skip), a .env file in the working directory if present, and FLOWPIPE_
// environment variables. Defaults are applied and the result validated.
func Load(path string) (Settings, error) {
	var s Settings

	// Missing .env is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return s, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("FLOWPIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return s, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("config: unmarshal: %w", err)
	}

	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// bindKeys registers every settings key so environment variables resolve
// even when no config file sets a value.
func bindKeys(v *viper.Viper) {
	for _, key := range []string{
		"read_buffer",
		"process_buffer",
		"read_workers",
		"process_workers",
		"write_workers",
		"log.level",
		"log.format",
		"log.output",
	} {
		// BindEnv only fails on an empty key.
		_ = v.BindEnv(key)
	}
}
