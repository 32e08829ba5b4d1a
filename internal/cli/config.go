package cli

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/IbtisamHemmo/Marketing-POC/domain/content"
	"github.com/IbtisamHemmo/Marketing-POC/internal/config"
)

// appConfig maps the floractl settings onto the server configuration so both
// binaries select and query the content store the same way.
func appConfig(v *viper.Viper) *config.Config {
	return &config.Config{
		Environment: "cli",
		Debug:       v.GetBool("debug"),
		Sanity: config.SanityConfig{
			ProjectID:  v.GetString("project_id"),
			Dataset:    v.GetString("dataset"),
			APIVersion: v.GetString("api_version"),
			Token:      v.GetString("token"),
			UseCDN:     v.GetBool("use_cdn"),
			APIHost:    v.GetString("api_host"),
			Timeout:    v.GetDuration("timeout"),
		},
		Content: config.ContentConfig{
			FixturePath: v.GetString("fixture"),
			Strict:      v.GetBool("strict"),
		},
		Site: config.SiteConfig{
			Title:         v.GetString("site.title"),
			Description:   v.GetString("site.description"),
			CopyrightYear: v.GetString("site.copyright_year"),
		},
	}
}

// contentService builds the same store and service the server uses.
func contentService(cfg *config.Config, log *slog.Logger) (*content.Service, error) {
	store, err := content.NewStore(cfg, log)
	if err != nil {
		return nil, err
	}
	return content.NewService(store, log), nil
}
