package config

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "ENVIRONMENT", "SANITY_PROJECT_ID", "SANITY_DATASET",
		"SANITY_USE_CDN", "CONTENT_FIXTURE_PATH", "CONTENT_STRICT",
		"SITE_TITLE", "SITE_DESCRIPTION", "SITE_COPYRIGHT_YEAR",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
		"STUDIO_RATE_LIMIT_PER_MINUTE", "STUDIO_RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}

	cfg, err := NewConfig(discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, "local", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "pqgampq3", cfg.Sanity.ProjectID)
	assert.Equal(t, "production", cfg.Sanity.Dataset)
	assert.True(t, cfg.Sanity.UseCDN)
	assert.Equal(t, "api.sanity.io", cfg.Sanity.APIHost)
	assert.Equal(t, 10*time.Second, cfg.Sanity.Timeout)
	assert.False(t, cfg.Content.Strict)
	assert.False(t, cfg.Content.UseFixture())
	assert.Equal(t, "Landing Page POC", cfg.Site.Title)
	assert.Equal(t, "Simple landing page that will be powered by Sanity CMS", cfg.Site.Description)
	assert.Equal(t, "2025", cfg.Site.CopyrightYear)
	assert.Equal(t, "floraflow-web", cfg.Otel.ServiceName)
	assert.False(t, cfg.Otel.Enabled())
	assert.Equal(t, 60, cfg.Studio.RateLimitPerMinute)
	assert.Equal(t, 10, cfg.Studio.RateLimitBurst)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SANITY_DATASET", "staging")
	t.Setenv("SANITY_USE_CDN", "false")
	t.Setenv("CONTENT_FIXTURE_PATH", "testdata/page.yaml")
	t.Setenv("CONTENT_STRICT", "true")
	t.Setenv("SITE_COPYRIGHT_YEAR", "2026")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")

	cfg, err := NewConfig(discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "staging", cfg.Sanity.Dataset)
	assert.False(t, cfg.Sanity.UseCDN)
	assert.True(t, cfg.Content.UseFixture())
	assert.True(t, cfg.Content.Strict)
	assert.Equal(t, "2026", cfg.Site.CopyrightYear)
	assert.True(t, cfg.Otel.Enabled())
}

func TestNewConfig_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := NewConfig(discardLogger())
	assert.Error(t, err)
}

func TestSanityConfig_IsConfigured(t *testing.T) {
	tests := []struct {
		name   string
		config SanityConfig
		want   bool
	}{
		{"project and dataset", SanityConfig{ProjectID: "pqgampq3", Dataset: "production"}, true},
		{"missing project", SanityConfig{Dataset: "production"}, false},
		{"missing dataset", SanityConfig{ProjectID: "pqgampq3"}, false},
		{"empty config", SanityConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.IsConfigured())
		})
	}
}
