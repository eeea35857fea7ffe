package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestConfigApplyDefaults(t *testing.T) {
	var c Config
	c.ApplyDefaults()
	require.Equal(t, "info", c.Level)
	require.Equal(t, "json", c.Format)
	require.Equal(t, "stderr", c.Output)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid json", Config{Level: "debug", Format: "json", Output: "stdout"}, ""},
		{"valid console", Config{Level: "trace", Format: "console", Output: "stderr"}, ""},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stderr"}, "level"},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stderr"}, "format"},
		{"bad output", Config{Level: "info", Format: "json", Output: "syslog"}, "output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNew(t *testing.T) {
	log := New(Config{Level: "warn"})
	require.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	log := New(Config{Level: "loud"})
	require.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
