package content

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbtisamHemmo/Marketing-POC/internal/testutil"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/sanity"
)

func TestSanityStore_FetchSendsPageQuery(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnQueryResult("/v2024-01-01/data/query/production", map[string]any{
		"hero": map[string]any{"title": "From the CMS"},
	})

	client, err := sanity.New(sanity.Config{
		ProjectID: "pqgampq3",
		Dataset:   "production",
		BaseURL:   ms.URL,
	})
	require.NoError(t, err)

	store := NewSanityStore(client)
	raw, err := store.Fetch(context.Background())
	require.NoError(t, err)

	doc, err := Decode(raw)
	require.NoError(t, err)
	require.NotNil(t, doc.Hero)
	assert.Equal(t, Text("From the CMS"), doc.Hero.Title)

	assert.Equal(t, PageQuery, ms.LastRequest().URL.Query().Get("query"))
	assert.Equal(t, "sanity", store.Name())
}

func TestFileStore_JSON(t *testing.T) {
	store := NewFileStore("testdata/page.json")

	raw, err := store.Fetch(context.Background())
	require.NoError(t, err)
	doc, err := Decode(raw)
	require.NoError(t, err)
	assert.False(t, doc.Empty())

	assert.NoError(t, store.Ping(context.Background()))
	assert.Equal(t, "file", store.Name())
}

func TestFileStore_YAMLEnvelope(t *testing.T) {
	store := NewFileStore("testdata/partial.yaml")

	raw, err := store.Fetch(context.Background())
	require.NoError(t, err)

	doc, err := Decode(raw)
	require.NoError(t, err)
	require.NotNil(t, doc.Hero)
	assert.Equal(t, Text("Grow Something Beautiful"), doc.Hero.Title)
	require.NotNil(t, doc.Contact)
	assert.Equal(t, Text("care@floraflow.example"), doc.Contact.Email)
	require.NotNil(t, doc.Banner)
	assert.Equal(t, Flag(false), doc.Banner.IsVisible)
	assert.Nil(t, doc.About)
}

func TestFileStore_Missing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	_, err := store.Fetch(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Error(t, store.Ping(context.Background()))
}

func TestFileStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileStore("testdata/page.json").Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFixture(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		ext     string
		want    string
		wantErr bool
	}{
		{"json document", `{"hero":{"title":"x"}}`, ".json", `{"hero":{"title":"x"}}`, false},
		{"json envelope", `{"ms":3,"query":"*","result":{"hero":null}}`, ".json", `{"hero":null}`, false},
		{"json null envelope", `{"result":null}`, ".json", `null`, false},
		{"object with result section is not an envelope", `{"result":1,"hero":{}}`, ".json", `{"result":1,"hero":{}}`, false},
		{"yaml document", "hero:\n  title: x\n", ".yml", `{"hero":{"title":"x"}}`, false},
		{"yaml upper-case extension", "contact:\n  phone: \"555\"\n", ".YAML", `{"contact":{"phone":"555"}}`, false},
		{"invalid json", `{"hero":`, ".json", "", true},
		{"invalid yaml", "hero: [unclosed", ".yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := ParseFixture([]byte(tt.data), tt.ext)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

// stubStore is an in-memory Store for service and handler tests.
type stubStore struct {
	raw     json.RawMessage
	err     error
	pingErr error
	calls   int
}

func (s *stubStore) Fetch(ctx context.Context) (json.RawMessage, error) {
	s.calls++
	return s.raw, s.err
}

func (s *stubStore) Ping(ctx context.Context) error { return s.pingErr }

func (s *stubStore) Name() string { return "stub" }

var errDown = errors.New("dial tcp: connection refused")
