package page

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/IbtisamHemmo/Marketing-POC/domain/content"
	"github.com/IbtisamHemmo/Marketing-POC/internal/config"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/apperror"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/logger"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/tracing"
)

// ContentSource yields the decoded page document.
type ContentSource interface {
	Page(ctx context.Context) (*content.Document, error)
}

// Handler serves the landing page.
type Handler struct {
	content ContentSource
	cfg     *config.Config
	log     *slog.Logger
}

// NewHandler creates a new page handler
func NewHandler(svc *content.Service, cfg *config.Config, log *slog.Logger) *Handler {
	return newHandler(svc, cfg, log)
}

func newHandler(src ContentSource, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		content: src,
		cfg:     cfg,
		log:     log.With(logger.Scope("page.handler")),
	}
}

// Landing renders the landing page
// @Summary      Landing page
// @Produce      html
// @Success      200 {string} string "HTML document"
// @Failure      503 {string} string "Content unavailable (strict mode only)"
// @Router       / [get]
func (h *Handler) Landing(c echo.Context) error {
	start := time.Now()
	defer func() { RenderDuration.Observe(time.Since(start).Seconds()) }()

	ctx, span := tracing.Start(c.Request().Context(), "page.render")
	defer span.End()

	v, outcome, err := h.view(ctx)
	span.SetAttributes(attribute.String("floraflow.outcome", outcome))
	Renders.WithLabelValues(outcome).Inc()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Render(&buf, v); err != nil {
		return apperror.NewInternal("failed to render page", err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// Content returns the resolved view model as JSON (not available in production)
// @Summary      Resolved page content
// @Produce      json
// @Success      200 {object} view.View
// @Failure      404 {object} map[string]any "Not found in production"
// @Router       /api/content [get]
func (h *Handler) Content(c echo.Context) error {
	if h.cfg.IsProduction() {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	v, _, err := h.view(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// view fetches and resolves the page. Store failures fall back to the
// all-defaults page unless strict mode is on.
func (h *Handler) view(ctx context.Context) (View, string, error) {
	doc, err := h.content.Page(ctx)
	if err != nil {
		if h.cfg.Content.Strict {
			return View{}, outcomeUnavailable, apperror.ErrContentUnavailable.WithInternal(err)
		}
		h.log.Error("rendering default content", logger.Error(err))
		return Resolve(nil, h.site()), outcomeFallback, nil
	}
	return Resolve(doc, h.site()), outcomeOK, nil
}

func (h *Handler) site() SiteInfo {
	return SiteInfo{
		Title:         h.cfg.Site.Title,
		Description:   h.cfg.Site.Description,
		CopyrightYear: h.cfg.Site.CopyrightYear,
	}
}
