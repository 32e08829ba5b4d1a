package page

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the landing page routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.Landing)
	e.HEAD("/", h.Landing)
	e.GET("/api/content", h.Content)
}
