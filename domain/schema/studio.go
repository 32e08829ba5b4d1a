package schema

import (
	"github.com/IbtisamHemmo/Marketing-POC/internal/config"
)

// StudioConfig describes the editing studio for the CMS project.
type StudioConfig struct {
	Name      string         `json:"name"`
	Title     string         `json:"title"`
	ProjectID string         `json:"projectId"`
	Dataset   string         `json:"dataset"`
	Plugins   []string       `json:"plugins"`
	Types     []DocumentType `json:"types"`
}

// NewStudioConfig builds the studio description for the configured project.
func NewStudioConfig(cfg *config.Config, reg *Registry) StudioConfig {
	return StudioConfig{
		Name:      "default",
		Title:     cfg.Site.Title,
		ProjectID: cfg.Sanity.ProjectID,
		Dataset:   cfg.Sanity.Dataset,
		Plugins:   []string{"structure", "vision"},
		Types:     reg.Types(),
	}
}
