package content

import (
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/IbtisamHemmo/Marketing-POC/internal/config"
	"github.com/IbtisamHemmo/Marketing-POC/internal/version"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/sanity"
)

var Module = fx.Module("content",
	fx.Provide(
		NewStore,
		NewService,
	),
)

// NewStore selects the fixture store when CONTENT_FIXTURE_PATH is set and the
// CMS store otherwise.
func NewStore(cfg *config.Config, log *slog.Logger) (Store, error) {
	if cfg.Content.UseFixture() {
		log.Info("serving content from fixture", slog.String("path", cfg.Content.FixturePath))
		return NewFileStore(cfg.Content.FixturePath), nil
	}

	if !cfg.Sanity.IsConfigured() {
		return nil, fmt.Errorf("SANITY_PROJECT_ID and SANITY_DATASET are required when CONTENT_FIXTURE_PATH is unset")
	}

	client, err := sanity.New(sanity.Config{
		ProjectID:  cfg.Sanity.ProjectID,
		Dataset:    cfg.Sanity.Dataset,
		APIVersion: cfg.Sanity.APIVersion,
		Token:      cfg.Sanity.Token,
		UseCDN:     cfg.Sanity.UseCDN,
		APIHost:    cfg.Sanity.APIHost,
		Timeout:    cfg.Sanity.Timeout,
		UserAgent:  version.UserAgent(),
	})
	if err != nil {
		return nil, err
	}

	log.Info("serving content from CMS", slog.String("url", client.BaseURL()))
	return NewSanityStore(client), nil
}
