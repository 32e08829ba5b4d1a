package sanity

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is an error returned by the CMS query API.
type Error struct {
	StatusCode  int    `json:"status_code"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Description)
	}
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Description)
}

// ErrTransport wraps failures that never produced an HTTP response.
var ErrTransport = errors.New("sanity: transport error")

// IsUnavailable reports whether err means the CMS could not serve the request:
// transport failures and 5xx responses.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransport) {
		return true
	}
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// IsNotFound reports whether the project or dataset does not exist.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}

func parseErrorResponse(status int, body []byte) error {
	var apiErr struct {
		Error struct {
			Type        string `json:"type"`
			Description string `json:"description"`
		} `json:"error"`
		// Some endpoints answer with a flat {"statusCode","error","message"} shape.
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Error.Description != "" || apiErr.Error.Type != "" {
			return &Error{
				StatusCode:  status,
				Type:        apiErr.Error.Type,
				Description: apiErr.Error.Description,
			}
		}
		if apiErr.Message != "" {
			return &Error{StatusCode: status, Description: apiErr.Message}
		}
	}

	desc := string(body)
	if desc == "" {
		desc = http.StatusText(status)
	}
	return &Error{StatusCode: status, Description: desc}
}
