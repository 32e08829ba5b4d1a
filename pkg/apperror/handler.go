package apperror

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HTTPErrorHandler returns an Echo error handler. Browser requests get a small
// HTML error page, everything else gets the {"error":{"code","message"}} envelope.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		errorObj := map[string]any{
			"code":    "internal_error",
			"message": "An internal error occurred",
		}

		var appErr *Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			code = appErr.HTTPStatus
			errorObj["code"] = appErr.Code
			errorObj["message"] = appErr.Message
			if len(appErr.Details) > 0 {
				errorObj["details"] = appErr.Details
			}
		case errors.As(err, &he):
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				errorObj["message"] = msg
			}
			errorObj["code"] = codeForStatus(code)
		}

		if code >= 500 {
			log.Error("request error",
				slog.Int("status", code),
				slog.String("path", c.Request().URL.Path),
				slog.String("error", err.Error()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		if wantsHTML(c.Request()) {
			c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
			c.Response().WriteHeader(code)
			_ = errorPage(code, errorObj["message"].(string)).Render(c.Response())
			return
		}

		_ = c.JSON(code, map[string]any{"error": errorObj})
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusUnprocessableEntity:
		return "validation_error"
	case http.StatusTooManyRequests:
		return "rate_limited"
	case http.StatusServiceUnavailable:
		return "unavailable"
	}
	if status >= 500 {
		return "internal_error"
	}
	return "error"
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

func errorPage(status int, message string) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(strconv.Itoa(status)+" - "+http.StatusText(status))),
			),
			Body(
				Class("min-h-screen flex items-center justify-center bg-white"),
				Div(
					Class("text-center"),
					H1(Class("text-4xl font-bold text-gray-900 mb-4"), g.Text(strconv.Itoa(status))),
					P(Class("text-xl text-gray-600 mb-8"), g.Text(message)),
					A(Href("/"), Class("text-green-600 hover:text-green-700"), g.Text("Back to home")),
				),
			),
		),
	})
}
