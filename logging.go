package flowpipe

import (
	"context"

	"github.com/rs/zerolog"
)

// LogConfig configures the logging plugin. Levels are zerolog level
// strings ("trace", "debug", "info", "warn", "error"); empty fields fall
// back to defaults, so LogConfig{} is a usable configuration.
type LogConfig struct {
	// Name identifies the wrapped transform in log output.
	// Defaults to "transform".
	Name string

	// LevelStart is the level for the run-start message.
	// Defaults to "debug".
	LevelStart string
	// LevelElement is the level for per-element messages.
	// Defaults to "trace".
	LevelElement string
	// LevelError is the level for the run-failure message.
	// Defaults to "error".
	LevelError string
	// LevelComplete is the level for the run-completion message.
	// Defaults to "debug".
	LevelComplete string
}

type logLevels struct {
	name     string
	start    zerolog.Level
	element  zerolog.Level
	err      zerolog.Level
	complete zerolog.Level
}

func (c LogConfig) parse() logLevels {
	level := func(s string, fallback zerolog.Level) zerolog.Level {
		if s == "" {
			return fallback
		}
		l, err := zerolog.ParseLevel(s)
		if err != nil {
			return fallback
		}
		return l
	}
	name := c.Name
	if name == "" {
		name = "transform"
	}
	return logLevels{
		name:     name,
		start:    level(c.LevelStart, zerolog.DebugLevel),
		element:  level(c.LevelElement, zerolog.TraceLevel),
		err:      level(c.LevelError, zerolog.ErrorLevel),
		complete: level(c.LevelComplete, zerolog.DebugLevel),
	}
}

// UseLogging returns a value-transparent plugin that logs the lifecycle of
// each run of the wrapped transform: start, every element, and either the
// terminal error or completion.
func UseLogging[In, Out any](log zerolog.Logger, cfg LogConfig) Plugin[In, Out] {
	lv := cfg.parse()
	return NewHookPlugin[In, Out](Hooks[Out]{
		OnStart: func(_ context.Context) {
			log.WithLevel(lv.start).Str("transform", lv.name).Msg("run started")
		},
		OnElement: func(_ context.Context, v Out) {
			log.WithLevel(lv.element).Str("transform", lv.name).Any("value", v).Msg("element")
		},
		OnError: func(_ context.Context, err error) {
			log.WithLevel(lv.err).Str("transform", lv.name).Err(err).Msg("run failed")
		},
		OnComplete: func(_ context.Context, err error) {
			if err != nil {
				return
			}
			log.WithLevel(lv.complete).Str("transform", lv.name).Msg("run completed")
		},
	})
}
