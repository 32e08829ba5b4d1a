package health

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the Prometheus registry.
type MetricsHandler struct {
	metrics echo.HandlerFunc
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{
		metrics: echo.WrapHandler(promhttp.Handler()),
	}
}

// Metrics serves the Prometheus text exposition
// @Summary      Prometheus metrics
// @Tags         health
// @Produce      plain
// @Router       /metrics [get]
func (h *MetricsHandler) Metrics(c echo.Context) error {
	return h.metrics(c)
}
