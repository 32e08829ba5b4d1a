package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/IbtisamHemmo/Marketing-POC/internal/config"
)

func newTestEcho(buf *bytes.Buffer) *echo.Echo {
	return NewEcho(EchoParams{
		Config: &config.Config{Environment: "local"},
		Log:    slog.New(slog.NewTextHandler(buf, nil)),
	})
}

func TestNewEcho_RecoversPanics(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(&logs)
	e.GET("/boom", func(c echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
	assert.Contains(t, logs.String(), "panic recovered")
}

func TestNewEcho_RequestLogging(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(&logs)
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "OK") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.NotContains(t, logs.String(), "uri=/healthz")

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, logs.String(), "msg=request")
	assert.Contains(t, logs.String(), "uri=/")
}

func TestNewEcho_TrailingSlashAndRequestID(t *testing.T) {
	e := newTestEcho(&bytes.Buffer{})
	e.GET("/studio/config", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/studio/config/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestNewEcho_NotFoundEnvelope(t *testing.T) {
	e := newTestEcho(&bytes.Buffer{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"not_found"`)
}

func TestNewEcho_RequestIDIsUUID(t *testing.T) {
	e := newTestEcho(&bytes.Buffer{})
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
	assert.NoError(t, err)
}
