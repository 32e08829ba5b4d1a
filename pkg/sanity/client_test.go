package sanity

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbtisamHemmo/Marketing-POC/internal/testutil"
)

const queryPath = "/v2024-01-01/data/query/production"

func newTestClient(t *testing.T, ms *testutil.MockServer, token string) *Client {
	t.Helper()
	client, err := New(Config{
		ProjectID:  "pqgampq3",
		Dataset:    "production",
		APIVersion: "2024-01-01",
		Token:      token,
		BaseURL:    ms.URL,
	})
	require.NoError(t, err)
	return client
}

func TestNew_RequiresProjectAndDataset(t *testing.T) {
	_, err := New(Config{Dataset: "production"})
	assert.ErrorContains(t, err, "ProjectID")

	_, err = New(Config{ProjectID: "pqgampq3"})
	assert.ErrorContains(t, err, "Dataset")
}

func TestNew_BaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "api host",
			cfg:  Config{ProjectID: "pqgampq3", Dataset: "production"},
			want: "https://pqgampq3.api.sanity.io",
		},
		{
			name: "cdn host",
			cfg:  Config{ProjectID: "pqgampq3", Dataset: "production", UseCDN: true},
			want: "https://pqgampq3.apicdn.sanity.io",
		},
		{
			name: "token disables cdn",
			cfg:  Config{ProjectID: "pqgampq3", Dataset: "production", UseCDN: true, Token: "sk"},
			want: "https://pqgampq3.api.sanity.io",
		},
		{
			name: "explicit base url",
			cfg:  Config{ProjectID: "pqgampq3", Dataset: "production", BaseURL: "http://localhost:9999/"},
			want: "http://localhost:9999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, client.BaseURL())
		})
	}
}

func TestQuery_ReturnsResult(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnQueryResult(queryPath, map[string]any{
		"hero": map[string]any{"title": "Grow with us"},
	})

	client := newTestClient(t, ms, "")
	raw, err := client.Query(context.Background(), `{"hero": *[_type == "hero"][0]}`, nil)
	require.NoError(t, err)

	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Grow with us", got["hero"]["title"])

	req := ms.LastRequest()
	require.NotNil(t, req)
	testutil.AssertMethod(t, req, http.MethodGet)
	assert.Equal(t, `{"hero": *[_type == "hero"][0]}`, req.URL.Query().Get("query"))
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestQuery_SendsTokenAndParams(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnQueryResult(queryPath, nil)

	client := newTestClient(t, ms, "read-token")
	raw, err := client.Query(context.Background(), `*[_type == $type][0]`, map[string]any{"type": "hero", "$limit": 3})
	require.NoError(t, err)
	assert.JSONEq(t, "null", string(raw))

	req := ms.LastRequest()
	require.NotNil(t, req)
	testutil.AssertHeader(t, req, "Authorization", "Bearer read-token")
	assert.Equal(t, `"hero"`, req.URL.Query().Get("$type"))
	assert.Equal(t, `3`, req.URL.Query().Get("$limit"))
}

func TestQuery_ErrorEnvelope(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnQueryError(queryPath, http.StatusBadRequest, "queryParseError", "unexpected token")

	client := newTestClient(t, ms, "")
	_, err := client.Query(context.Background(), `*[`, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "queryParseError", apiErr.Type)
	assert.Equal(t, "unexpected token", apiErr.Description)
	assert.False(t, IsUnavailable(err))
}

func TestQuery_ServerErrorIsUnavailable(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.On(http.MethodGet, queryPath, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	client := newTestClient(t, ms, "")
	_, err := client.Query(context.Background(), `*`, nil)
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestQuery_UnknownDatasetIsNotFound(t *testing.T) {
	ms := testutil.NewMockServer(t)

	client := newTestClient(t, ms, "")
	_, err := client.Query(context.Background(), `*`, nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnavailable(err))
}

func TestQuery_TransportError(t *testing.T) {
	client, err := New(Config{
		ProjectID: "pqgampq3",
		Dataset:   "production",
		BaseURL:   "http://127.0.0.1:1",
		Timeout:   time.Second,
	})
	require.NoError(t, err)

	_, err = client.Query(context.Background(), `*`, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.True(t, IsUnavailable(err))
}

func TestQuery_CancelledContext(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnQueryResult(queryPath, 1)

	client := newTestClient(t, ms, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Query(ctx, `*`, nil)
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
}

func TestPing(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnQueryResult(queryPath, 1)

	client := newTestClient(t, ms, "")
	require.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, pingQuery, ms.LastRequest().URL.Query().Get("query"))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "[400] queryParseError: bad", (&Error{StatusCode: 400, Type: "queryParseError", Description: "bad"}).Error())
	assert.Equal(t, "[502] Bad Gateway", (&Error{StatusCode: 502, Description: "Bad Gateway"}).Error())
}

func TestQuery_SendsUserAgent(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnQueryResult(queryPath, 1)

	client, err := New(Config{
		ProjectID: "pqgampq3",
		Dataset:   "production",
		BaseURL:   ms.URL,
		UserAgent: "floraflow/test",
	})
	require.NoError(t, err)

	_, err = client.Query(context.Background(), pingQuery, nil)
	require.NoError(t, err)
	testutil.AssertHeader(t, ms.LastRequest(), "User-Agent", "floraflow/test")
}
