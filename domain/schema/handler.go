package schema

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IbtisamHemmo/Marketing-POC/domain/content"
	"github.com/IbtisamHemmo/Marketing-POC/internal/config"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/apperror"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/logger"
)

// RawSource yields the raw page documents keyed by type name.
type RawSource interface {
	Raw(ctx context.Context) (map[string]any, error)
}

// Handler serves the studio endpoints.
type Handler struct {
	reg     *Registry
	content RawSource
	cfg     *config.Config
	log     *slog.Logger
}

// NewHandler creates a new schema handler
func NewHandler(reg *Registry, svc *content.Service, cfg *config.Config, log *slog.Logger) *Handler {
	return newHandler(reg, svc, cfg, log)
}

func newHandler(reg *Registry, src RawSource, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		reg:     reg,
		content: src,
		cfg:     cfg,
		log:     log.With(logger.Scope("schema.handler")),
	}
}

// DocumentSummary is one row of the studio document list.
type DocumentSummary struct {
	Type    string        `json:"type"`
	Title   string        `json:"title"`
	Present bool          `json:"present"`
	Preview *PreviewValue `json:"preview,omitempty"`
}

// ValidationReport is the result of validating the live content.
type ValidationReport struct {
	Valid      bool        `json:"valid"`
	Checked    []string    `json:"checked"`
	Violations []Violation `json:"violations"`
}

// NewValidationReport validates raw and records which documents were present.
func NewValidationReport(reg *Registry, raw map[string]any) ValidationReport {
	checked := make([]string, 0, len(reg.types))
	for _, name := range reg.Names() {
		if raw[name] != nil {
			checked = append(checked, name)
		}
	}
	violations := ValidateAll(raw)
	if violations == nil {
		violations = []Violation{}
	}
	return ValidationReport{
		Valid:      len(violations) == 0,
		Checked:    checked,
		Violations: violations,
	}
}

// Config returns the studio configuration
// @Summary      Studio configuration
// @Produce      json
// @Success      200 {object} StudioConfig
// @Router       /studio/config [get]
func (h *Handler) Config(c echo.Context) error {
	return c.JSON(http.StatusOK, NewStudioConfig(h.cfg, h.reg))
}

// Schema returns the registered document types, or one type by name
// @Summary      Document types
// @Produce      json
// @Param        type query string false "Document type name"
// @Success      200 {array} DocumentType
// @Failure      404 {object} apperror.Error
// @Router       /studio/schema [get]
func (h *Handler) Schema(c echo.Context) error {
	name := c.QueryParam("type")
	if name == "" {
		return c.JSON(http.StatusOK, h.reg.Types())
	}

	t, ok := h.reg.Lookup(name)
	if !ok {
		return apperror.NewNotFound("document type", name)
	}
	return c.JSON(http.StatusOK, t)
}

// Documents lists the page documents with their previews
// @Summary      Document list
// @Produce      json
// @Success      200 {array} DocumentSummary
// @Failure      503 {object} apperror.Error
// @Router       /studio/documents [get]
func (h *Handler) Documents(c echo.Context) error {
	raw, err := h.content.Raw(c.Request().Context())
	if err != nil {
		return apperror.ErrContentUnavailable.WithInternal(err)
	}

	out := make([]DocumentSummary, 0, len(h.reg.types))
	for _, t := range h.reg.Types() {
		row := DocumentSummary{Type: t.Name, Title: t.Title}
		if doc, ok := raw[t.Name].(map[string]any); ok {
			p := t.PreviewOf(doc)
			row.Present = true
			row.Preview = &p
		}
		out = append(out, row)
	}
	return c.JSON(http.StatusOK, out)
}

// Validate checks the live content against the rule table
// @Summary      Validate content
// @Produce      json
// @Success      200 {object} ValidationReport
// @Failure      503 {object} apperror.Error
// @Router       /studio/validate [get]
func (h *Handler) Validate(c echo.Context) error {
	raw, err := h.content.Raw(c.Request().Context())
	if err != nil {
		return apperror.ErrContentUnavailable.WithInternal(err)
	}

	report := NewValidationReport(h.reg, raw)
	if !report.Valid {
		h.log.Warn("content failed validation", slog.Int("violations", len(report.Violations)))
	}
	return c.JSON(http.StatusOK, report)
}
