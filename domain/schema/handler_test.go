package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbtisamHemmo/Marketing-POC/domain/content"
	"github.com/IbtisamHemmo/Marketing-POC/internal/config"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/apperror"
)

type stubRaw struct {
	raw map[string]any
	err error
}

func (s *stubRaw) Raw(context.Context) (map[string]any, error) {
	return s.raw, s.err
}

func newTestServer(src RawSource) *echo.Echo {
	return newTestServerWithLimit(src, config.StudioConfig{RateLimitPerMinute: -1})
}

func newTestServerWithLimit(src RawSource, studio config.StudioConfig) *echo.Echo {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Sanity: config.SanityConfig{ProjectID: "pqgampq3", Dataset: "production"},
		Site:   config.SiteConfig{Title: "Landing Page POC"},
		Studio: studio,
	}

	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(log)
	RegisterRoutes(e, newHandler(NewRegistry(), src, cfg, log), cfg)
	return e
}

func get(t *testing.T, e *echo.Echo, target string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestHandler_Config(t *testing.T) {
	e := newTestServer(&stubRaw{})

	var got StudioConfig
	rec := get(t, e, "/studio/config", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pqgampq3", got.ProjectID)
	assert.Len(t, got.Types, 7)
}

func TestHandler_Schema(t *testing.T) {
	e := newTestServer(&stubRaw{})

	t.Run("all types", func(t *testing.T) {
		var got []DocumentType
		rec := get(t, e, "/studio/schema", &got)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, got, 7)
		assert.Equal(t, "hero", got[0].Name)
		assert.Equal(t, "siteSettings", got[6].Name)
	})

	t.Run("one type", func(t *testing.T) {
		var got DocumentType
		rec := get(t, e, "/studio/schema?type=contact", &got)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Contact Section", got.Title)
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := get(t, e, "/studio/schema?type=product", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "document type 'product' not found")
	})
}

func TestHandler_Documents(t *testing.T) {
	e := newTestServer(&stubRaw{raw: map[string]any{
		"banner": map[string]any{"title": "Sale", "bannerType": "carousel"},
		"hero":   nil,
	}})

	var got []DocumentSummary
	rec := get(t, e, "/studio/documents", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, got, 7)
	assert.Equal(t, DocumentSummary{Type: "hero", Title: "Hero Section"}, got[0])

	banner := got[4]
	assert.Equal(t, "banner", banner.Type)
	assert.True(t, banner.Present)
	require.NotNil(t, banner.Preview)
	assert.Equal(t, PreviewValue{Title: "Sale", Subtitle: "carousel banner"}, *banner.Preview)
}

func TestHandler_Validate(t *testing.T) {
	e := newTestServer(&stubRaw{raw: map[string]any{
		"hero":    map[string]any{"title": "Grow"},
		"contact": map[string]any{"title": "Hi", "email": "nope"},
	}})

	var got ValidationReport
	rec := get(t, e, "/studio/validate", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, got.Valid)
	assert.Equal(t, []string{"hero", "contact"}, got.Checked)
	require.Len(t, got.Violations, 1)
	assert.Equal(t, "email", got.Violations[0].Field)
}

func TestHandler_ValidateClean(t *testing.T) {
	e := newTestServer(&stubRaw{raw: map[string]any{}})

	var got ValidationReport
	rec := get(t, e, "/studio/validate", &got)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, got.Valid)
	assert.Empty(t, got.Violations)
	assert.Contains(t, rec.Body.String(), `"violations":[]`)
}

func TestHandler_StoreDown(t *testing.T) {
	e := newTestServer(&stubRaw{err: fmt.Errorf("%w: boom", content.ErrStoreUnavailable)})

	for _, target := range []string{"/studio/documents", "/studio/validate"} {
		t.Run(target, func(t *testing.T) {
			rec := get(t, e, target, nil)
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Contains(t, rec.Body.String(), "content_unavailable")
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
