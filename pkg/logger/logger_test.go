package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
	}{
		{"basic scope", "content"},
		{"nested scope", "content.svc"},
		{"empty scope", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Scope(tt.scope)
			assert.Equal(t, "scope", attr.Key)
			assert.Equal(t, tt.scope, attr.Value.String())
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"simple error", errors.New("cms unreachable")},
		{"nil error", nil},
		{"joined error", errors.Join(errors.New("outer"), errors.New("inner"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Error(tt.err)
			assert.Equal(t, "error", attr.Key)
			assert.Equal(t, tt.err, attr.Value.Any())
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		env      string
		enabled  slog.Level
		disabled *slog.Level
	}{
		{env: "", enabled: slog.LevelInfo, disabled: ptr(slog.LevelDebug)},
		{env: "debug", enabled: slog.LevelDebug},
		{env: "DEBUG", enabled: slog.LevelDebug},
		{env: "dEbUg", enabled: slog.LevelDebug},
		{env: "info", enabled: slog.LevelInfo, disabled: ptr(slog.LevelDebug)},
		{env: "warn", enabled: slog.LevelWarn, disabled: ptr(slog.LevelInfo)},
		{env: "warning", enabled: slog.LevelWarn, disabled: ptr(slog.LevelInfo)},
		{env: "error", enabled: slog.LevelError, disabled: ptr(slog.LevelWarn)},
		{env: "invalid", enabled: slog.LevelInfo, disabled: ptr(slog.LevelDebug)},
	}

	for _, tt := range tests {
		t.Run("LOG_LEVEL="+tt.env, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			t.Setenv("GO_ENV", "")

			log := NewLogger()
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.enabled))
			if tt.disabled != nil {
				assert.False(t, log.Enabled(ctx, *tt.disabled))
			}
		})
	}
}

func TestNewLogger_ProductionJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GO_ENV", "production")

	log := NewLogger()
	require.NotNil(t, log)

	_, isJSON := log.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON, "production logger should use the JSON handler")
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
}

func ptr(l slog.Level) *slog.Level { return &l }
