// Package sanity is a minimal read-only client for the Sanity HTTP query API.
//
//	client, err := sanity.New(sanity.Config{
//		ProjectID:  "pqgampq3",
//		Dataset:    "production",
//		APIVersion: "2024-01-01",
//		UseCDN:     true,
//	})
//	result, err := client.Query(ctx, `*[_type == "hero"][0]`, nil)
package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultAPIHost    = "api.sanity.io"
	defaultAPIVersion = "2024-01-01"
	defaultTimeout    = 10 * time.Second

	pingQuery = `count(*[_type == "siteSettings"])`
)

// Config holds configuration for the query client.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string        // Optional: date-based API version, defaults to 2024-01-01
	Token      string        // Optional: read token for private datasets
	UseCDN     bool          // Query apicdn instead of api
	APIHost    string        // Optional: defaults to api.sanity.io
	BaseURL    string        // Optional: overrides the derived project URL
	Timeout    time.Duration // Optional: defaults to 10s
	UserAgent  string        // Optional: sent as the User-Agent header
}

// Client queries one project dataset.
type Client struct {
	http    *resty.Client
	dataset string
	version string
}

// New creates a query client. ProjectID and Dataset are required.
func New(cfg Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("ProjectID is required")
	}
	if cfg.Dataset == "" {
		return nil, fmt.Errorf("Dataset is required")
	}

	version := strings.TrimPrefix(cfg.APIVersion, "v")
	if version == "" {
		version = defaultAPIVersion
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base := cfg.BaseURL
	if base == "" {
		host := cfg.APIHost
		if host == "" {
			host = defaultAPIHost
		}
		if cfg.UseCDN && cfg.Token == "" {
			host = strings.Replace(host, "api.", "apicdn.", 1)
		}
		base = fmt.Sprintf("https://%s.%s", cfg.ProjectID, host)
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		httpClient.SetAuthToken(cfg.Token)
	}
	if cfg.UserAgent != "" {
		httpClient.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{
		http:    httpClient,
		dataset: cfg.Dataset,
		version: version,
	}, nil
}

// BaseURL returns the resolved project URL.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// queryResponse is the query endpoint envelope.
type queryResponse struct {
	Ms     int             `json:"ms"`
	Query  string          `json:"query"`
	Result json.RawMessage `json:"result"`
}

// Query runs a GROQ query and returns the raw "result" value, which may be
// JSON null. Each params entry is sent as a $name query parameter.
func (c *Client) Query(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("query", query)
	for name, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding param %q: %w", name, err)
		}
		values.Set("$"+strings.TrimPrefix(name, "$"), string(encoded))
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(values).
		Get(c.queryPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if resp.IsError() {
		return nil, parseErrorResponse(resp.StatusCode(), resp.Body())
	}

	var out queryResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decoding query response: %w", err)
	}
	if len(out.Result) == 0 {
		return json.RawMessage("null"), nil
	}
	return out.Result, nil
}

// Ping runs a trivial count query to confirm the dataset is reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Query(ctx, pingQuery, nil)
	return err
}

func (c *Client) queryPath() string {
	return fmt.Sprintf("/v%s/data/query/%s", c.version, url.PathEscape(c.dataset))
}
