package schema

import (
	"github.com/labstack/echo/v4"

	"github.com/IbtisamHemmo/Marketing-POC/internal/config"
)

// RegisterRoutes registers the studio routes
func RegisterRoutes(e *echo.Echo, h *Handler, cfg *config.Config) {
	g := e.Group("/studio", RateLimit(cfg.Studio))
	g.GET("/config", h.Config)
	g.GET("/schema", h.Schema)
	g.GET("/documents", h.Documents)
	g.GET("/validate", h.Validate)
}
