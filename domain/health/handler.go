package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/IbtisamHemmo/Marketing-POC/domain/content"
	"github.com/IbtisamHemmo/Marketing-POC/internal/config"
	"github.com/IbtisamHemmo/Marketing-POC/internal/version"
)

// Pinger checks that the content store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler handles health check requests
type Handler struct {
	store   Pinger
	source  string
	cfg     *config.Config
	host    hostProbe
	startAt time.Time
}

// NewHandler creates a new health handler
func NewHandler(svc *content.Service, cfg *config.Config) *Handler {
	return newHandler(svc, svc.Store().Name(), cfg)
}

func newHandler(store Pinger, source string, cfg *config.Config) *Handler {
	return &Handler{
		store:   store,
		source:  source,
		cfg:     cfg,
		host:    newHostProbe(),
		startAt: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Source  string `json:"source,omitempty"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}

// Health returns the overall service health. An unreachable content store
// degrades the service rather than failing it, since the page still renders
// with default content.
// @Summary      Get service health
// @Description  Returns health status including content store connectivity and uptime
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse "Service is healthy or degraded"
// @Success      503 {object} HealthResponse "Service is unhealthy (strict content mode)"
// @Router       /health [get]
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	check := Check{Status: "healthy", Source: h.source}
	start := time.Now()
	if err := h.store.Ping(ctx); err != nil {
		check.Status = "unhealthy"
		check.Message = err.Error()
	}
	check.Latency = time.Since(start).Round(time.Millisecond).String()

	overallStatus := "healthy"
	statusCode := http.StatusOK
	if check.Status == "unhealthy" {
		overallStatus = "degraded"
		if h.cfg.Content.Strict {
			overallStatus = "unhealthy"
			statusCode = http.StatusServiceUnavailable
		}
	}

	return c.JSON(statusCode, HealthResponse{
		Status:    overallStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks:    map[string]Check{"content": check},
	})
}

// Healthz returns a simple health check (for k8s liveness probe)
// @Summary      Liveness probe
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "OK"
// @Router       /healthz [get]
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready returns readiness status (for k8s readiness probe)
// @Summary      Readiness probe
// @Description  Returns readiness status based on content store connectivity
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]any "Service is ready"
// @Success      503 {object} map[string]any "Service is not ready"
// @Router       /ready [get]
func (h *Handler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "Content store unreachable",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Debug returns debug information (only in development)
// @Summary      Get debug information
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]any "Debug information"
// @Failure      404 {object} map[string]any "Not found in production"
// @Router       /debug [get]
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.IsProduction() {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"version":     version.Info(),
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"host":        h.host.collect(c.Request().Context()),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"content": map[string]any{
			"source":       h.source,
			"project_id":   h.cfg.Sanity.ProjectID,
			"dataset":      h.cfg.Sanity.Dataset,
			"api_version":  h.cfg.Sanity.APIVersion,
			"use_cdn":      h.cfg.Sanity.UseCDN,
			"fixture_path": h.cfg.Content.FixturePath,
			"strict":       h.cfg.Content.Strict,
		},
	})
}
