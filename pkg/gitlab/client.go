package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPerPage = 100
	maxPages       = 50
)

// HTTPClient is the subset of *http.Client the GitLab client needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	BaseURL    string // e.g. https://gitlab.com
	Token      string // personal, project or job token
	Timeout    time.Duration
	HTTPClient HTTPClient // optional; built from Timeout when nil
}

// Client is a thin wrapper over the GitLab REST API v4.
type Client struct {
	baseURL    string
	token      string
	httpClient HTTPClient
}

// NewClient creates a GitLab API client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: httpClient,
	}
}

func (c *Client) endpoint(format string, args ...any) string {
	return c.baseURL + "/api/v4" + fmt.Sprintf(format, args...)
}

// doJSON sends an optional JSON body and decodes the JSON response into out.
// It returns the response headers for pagination.
func (c *Client) doJSON(ctx context.Context, method, reqURL string, in, out any) (http.Header, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) (http.Header, error) {
	if c.token != "" {
		req.Header.Set("PRIVATE-TOKEN", c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.Header, nil
}

// getPaged follows X-Next-Page until exhausted, calling collect with each
// decoded page.
func getPaged[T any](ctx context.Context, c *Client, reqURL string, collect func([]T)) error {
	u, err := url.Parse(reqURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set("per_page", strconv.Itoa(defaultPerPage))

	page := "1"
	for i := 0; i < maxPages && page != ""; i++ {
		q.Set("page", page)
		u.RawQuery = q.Encode()

		var items []T
		header, err := c.doJSON(ctx, http.MethodGet, u.String(), nil, &items)
		if err != nil {
			return err
		}
		collect(items)
		page = header.Get("X-Next-Page")
	}
	return nil
}
