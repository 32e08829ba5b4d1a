// Package testutil provides a mock headless-CMS server for client and store tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// MockServer is an httptest server with handlers keyed by "METHOD path".
type MockServer struct {
	*httptest.Server
	t        *testing.T
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []*http.Request
}

// NewMockServer starts a mock server that is closed when the test ends.
func NewMockServer(t *testing.T) *MockServer {
	ms := &MockServer{
		t:        t,
		handlers: make(map[string]http.HandlerFunc),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ms.handleRequest)

	ms.Server = httptest.NewServer(mux)
	t.Cleanup(ms.Close)
	return ms
}

// On registers a handler for a specific method and path.
func (ms *MockServer) On(method, path string, handler http.HandlerFunc) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers[method+" "+path] = handler
}

// OnJSON registers a handler that returns JSON for a specific method and path.
func (ms *MockServer) OnJSON(method, path string, statusCode int, response any) {
	ms.On(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if response != nil {
			if err := json.NewEncoder(w).Encode(response); err != nil {
				ms.t.Errorf("failed to encode response: %v", err)
			}
		}
	})
}

// OnQueryResult answers GET path with the CMS query envelope {"result": result}.
func (ms *MockServer) OnQueryResult(path string, result any) {
	ms.OnJSON(http.MethodGet, path, http.StatusOK, map[string]any{
		"ms":     1,
		"query":  "",
		"result": result,
	})
}

// OnQueryError answers GET path with the CMS error envelope.
func (ms *MockServer) OnQueryError(path string, statusCode int, errType, description string) {
	ms.OnJSON(http.MethodGet, path, statusCode, map[string]any{
		"error": map[string]any{
			"type":        errType,
			"description": description,
		},
	})
}

// Requests returns the requests received so far.
func (ms *MockServer) Requests() []*http.Request {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]*http.Request(nil), ms.requests...)
}

// LastRequest returns the most recent request, or nil.
func (ms *MockServer) LastRequest() *http.Request {
	reqs := ms.Requests()
	if len(reqs) == 0 {
		return nil
	}
	return reqs[len(reqs)-1]
}

func (ms *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	ms.mu.Lock()
	ms.requests = append(ms.requests, r.Clone(r.Context()))
	handler, ok := ms.handlers[key]
	ms.mu.Unlock()

	if !ok {
		ms.t.Logf("no handler registered for %s", key)
		http.NotFound(w, r)
		return
	}
	handler(w, r)
}

// AssertHeader asserts that a request header has the expected value.
func AssertHeader(t *testing.T, r *http.Request, key, expected string) {
	t.Helper()
	actual := r.Header.Get(key)
	if actual != expected {
		t.Errorf("expected header %s=%q, got %q", key, expected, actual)
	}
}

// AssertMethod asserts that the request method matches expected.
func AssertMethod(t *testing.T, r *http.Request, expected string) {
	t.Helper()
	if r.Method != expected {
		t.Errorf("expected method %s, got %s", expected, r.Method)
	}
}
