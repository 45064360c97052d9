package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pipeloop/internal/config"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		cfg     config.LogConfig
		verbose bool
		want    zapcore.Level
	}{
		{config.LogConfig{Level: "warn", Format: "console"}, false, zapcore.WarnLevel},
		{config.LogConfig{Level: "info", Format: "json"}, false, zapcore.InfoLevel},
		{config.LogConfig{Level: "error", Format: "json"}, true, zapcore.DebugLevel},
	}
	for _, tc := range cases {
		l, err := New(tc.cfg, tc.verbose)
		require.NoError(t, err)
		require.True(t, l.Core().Enabled(tc.want), "%+v verbose=%v", tc.cfg, tc.verbose)
		if tc.want > zapcore.DebugLevel {
			require.False(t, l.Core().Enabled(tc.want-1))
		}
		_ = l.Sync()
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: "json"}, false)
	require.Error(t, err)
}
