package logging

import (
	"testing"

	"go-reactor-sim/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LoggingConfig
		debug bool
	}{
		{"console debug", config.LoggingConfig{Level: "debug", Format: "console"}, true},
		{"json info", config.LoggingConfig{Level: "info", Format: "json"}, false},
		{"unknown level falls back to info", config.LoggingConfig{Level: "loud"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, log.Core().Enabled(zapcore.DebugLevel))
			assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
