package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/IbtisamHemmo/Marketing-POC/pkg/sanity"
)

// ErrStoreUnavailable wraps any failure to obtain the page document from a store.
var ErrStoreUnavailable = errors.New("content store unavailable")

// Store yields the raw page query result.
type Store interface {
	// Fetch returns the page query result. A JSON null result is not an error.
	Fetch(ctx context.Context) (json.RawMessage, error)
	// Ping checks that the store can be reached.
	Ping(ctx context.Context) error
	// Name identifies the store in logs and metrics.
	Name() string
}

// Querier is the subset of the CMS client used by SanityStore.
type Querier interface {
	Query(ctx context.Context, query string, params map[string]any) (json.RawMessage, error)
	Ping(ctx context.Context) error
}

var _ Querier = (*sanity.Client)(nil)

// SanityStore runs PageQuery against the headless CMS.
type SanityStore struct {
	client Querier
}

// NewSanityStore creates a store backed by a CMS query client.
func NewSanityStore(client Querier) *SanityStore {
	return &SanityStore{client: client}
}

// Fetch implements Store.
func (s *SanityStore) Fetch(ctx context.Context) (json.RawMessage, error) {
	return s.client.Query(ctx, PageQuery, nil)
}

// Ping implements Store.
func (s *SanityStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Name implements Store.
func (s *SanityStore) Name() string { return "sanity" }

// FileStore serves the page document from a JSON or YAML file. The file holds
// the query result itself, or a {"result": ...} envelope as saved by floractl fetch.
type FileStore struct {
	path string
}

// NewFileStore creates a store reading path on every fetch.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the fixture path.
func (s *FileStore) Path() string { return s.path }

// Fetch implements Store.
func (s *FileStore) Fetch(ctx context.Context) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return ParseFixture(data, filepath.Ext(s.path))
}

// Ping implements Store.
func (s *FileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("fixture not readable: %w", err)
	}
	return nil
}

// Name implements Store.
func (s *FileStore) Name() string { return "file" }

// ParseFixture converts fixture bytes to a query result. ext selects YAML
// (".yaml", ".yml") or JSON (anything else).
func ParseFixture(data []byte, ext string) (json.RawMessage, error) {
	var raw json.RawMessage
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parsing yaml fixture: %w", err)
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("converting yaml fixture: %w", err)
		}
		raw = b
	default:
		if !json.Valid(data) {
			return nil, fmt.Errorf("parsing json fixture: invalid JSON")
		}
		raw = data
	}
	return unwrapEnvelope(raw), nil
}

func unwrapEnvelope(raw json.RawMessage) json.RawMessage {
	if !isObject(raw) {
		return raw
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	result, ok := env["result"]
	if !ok {
		return raw
	}
	for key := range env {
		if key != "result" && key != "ms" && key != "query" {
			return raw
		}
	}
	return result
}
