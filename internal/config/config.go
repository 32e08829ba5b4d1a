package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"3000"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Headless CMS connection
	Sanity SanityConfig

	// Content loading behaviour
	Content ContentConfig

	// Site-wide document metadata
	Site SiteConfig

	// Studio endpoint limits
	Studio StudioConfig

	// OpenTelemetry tracing
	Otel OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// IsProduction reports whether the server runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SanityConfig holds the CMS project coordinates
type SanityConfig struct {
	ProjectID  string        `env:"SANITY_PROJECT_ID" envDefault:"pqgampq3"`
	Dataset    string        `env:"SANITY_DATASET" envDefault:"production"`
	APIVersion string        `env:"SANITY_API_VERSION" envDefault:"2024-01-01"`
	Token      string        `env:"SANITY_API_TOKEN"`
	UseCDN     bool          `env:"SANITY_USE_CDN" envDefault:"true"`
	APIHost    string        `env:"SANITY_API_HOST" envDefault:"api.sanity.io"`
	Timeout    time.Duration `env:"SANITY_TIMEOUT" envDefault:"10s"`
}

// IsConfigured returns true if a project and dataset are set
func (s *SanityConfig) IsConfigured() bool {
	return s.ProjectID != "" && s.Dataset != ""
}

// ContentConfig controls where page content comes from
type ContentConfig struct {
	// FixturePath loads content from a JSON or YAML file instead of the CMS.
	FixturePath string `env:"CONTENT_FIXTURE_PATH"`

	// Strict turns store failures into 503 responses instead of rendering defaults.
	Strict bool `env:"CONTENT_STRICT" envDefault:"false"`
}

// UseFixture returns true if content is served from a local file
func (c *ContentConfig) UseFixture() bool {
	return c.FixturePath != ""
}

// SiteConfig holds document-level metadata for the rendered page
type SiteConfig struct {
	Title         string `env:"SITE_TITLE" envDefault:"Landing Page POC"`
	Description   string `env:"SITE_DESCRIPTION" envDefault:"Simple landing page that will be powered by Sanity CMS"`
	CopyrightYear string `env:"SITE_COPYRIGHT_YEAR" envDefault:"2025"`
}

// StudioConfig limits the /studio endpoints, which query the CMS on every call
type StudioConfig struct {
	RateLimitPerMinute int `env:"STUDIO_RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	RateLimitBurst     int `env:"STUDIO_RATE_LIMIT_BURST" envDefault:"10"`
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	source := "sanity"
	if cfg.Content.UseFixture() {
		source = "fixture"
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("content_source", source),
		slog.String("sanity_project", cfg.Sanity.ProjectID),
		slog.String("sanity_dataset", cfg.Sanity.Dataset),
		slog.Bool("content_strict", cfg.Content.Strict),
	)

	return cfg, nil
}
