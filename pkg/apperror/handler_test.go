package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHTTPErrorHandler_AppError(t *testing.T) {
	e := echo.New()
	handler := HTTPErrorHandler(slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(NewBadRequest("invalid input"), c)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	errObj := resp["error"].(map[string]any)
	if errObj["code"] != "bad_request" {
		t.Errorf("Code = %v, want bad_request", errObj["code"])
	}
	if errObj["message"] != "invalid input" {
		t.Errorf("Message = %v, want 'invalid input'", errObj["message"])
	}
}

func TestHTTPErrorHandler_WrappedAppError(t *testing.T) {
	e := echo.New()
	handler := HTTPErrorHandler(slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(ErrContentUnavailable.WithInternal(errors.New("connection refused")), c)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rec.Body.String(), "content_unavailable") {
		t.Errorf("Body = %s, want content_unavailable code", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("internal error must not leak into the response body")
	}
}

func TestHTTPErrorHandler_EchoError_StatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode string
	}{
		{"not_found", http.StatusNotFound, "not_found"},
		{"bad_request", http.StatusBadRequest, "bad_request"},
		{"method_not_allowed", http.StatusMethodNotAllowed, "method_not_allowed"},
		{"unprocessable_entity", http.StatusUnprocessableEntity, "validation_error"},
		{"unavailable", http.StatusServiceUnavailable, "unavailable"},
		{"internal", http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			handler := HTTPErrorHandler(slog.Default())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(echo.NewHTTPError(tt.status, "test message"), c)

			if rec.Code != tt.status {
				t.Errorf("Status = %d, want %d", rec.Code, tt.status)
			}

			var resp map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			errObj := resp["error"].(map[string]any)
			if errObj["code"] != tt.wantCode {
				t.Errorf("Code = %v, want %v", errObj["code"], tt.wantCode)
			}
		})
	}
}

func TestHTTPErrorHandler_BrowserGetsHTML(t *testing.T) {
	e := echo.New()
	handler := HTTPErrorHandler(slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAccept, "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(ErrContentUnavailable, c)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Errorf("Body should be an HTML document, got %q", body)
	}
	if !strings.Contains(body, "Page content is temporarily unavailable") {
		t.Errorf("Body should carry the error message, got %q", body)
	}
}

func TestHTTPErrorHandler_HeadRequest(t *testing.T) {
	e := echo.New()
	handler := HTTPErrorHandler(slog.Default())

	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(NewNotFound("section", "contact"), c)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("Body should be empty for HEAD request, got %d bytes", rec.Body.Len())
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	handler := HTTPErrorHandler(slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = c.String(http.StatusOK, "already sent")
	handler(ErrInternal, c)

	if rec.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "already sent" {
		t.Errorf("Body = %q, want untouched body", rec.Body.String())
	}
}
