// Package api is a client for the document search HTTP API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"docsearch/internal/domain"
)

const (
	defaultPage    = 1
	defaultSize    = 10
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

// Searcher runs keyword searches
type Searcher interface {
	Search(ctx context.Context, q domain.SearchQuery) (*SearchResponse, error)
}

// DocumentFetcher retrieves full documents by id
type DocumentFetcher interface {
	Document(ctx context.Context, id string) (*domain.Document, error)
}

// Client talks to the search backend
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default http.Client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a client for the backend at baseURL (e.g. http://localhost:8000)
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// BaseURL returns the backend root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Search runs GET /api/search/?q=&page=&size=
func (c *Client) Search(ctx context.Context, q domain.SearchQuery) (*SearchResponse, error) {
	page, size := q.Page, q.Size
	if page < 1 {
		page = defaultPage
	}
	if size < 1 {
		size = defaultSize
	}

	params := url.Values{}
	params.Set("q", q.Text)
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	var resp SearchResponse
	if err := c.get(ctx, "/api/search/", params, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", q.Text, err)
	}
	if resp.Results == nil {
		resp.Results = []domain.ResultSummary{}
	}
	return &resp, nil
}

// Document runs GET /api/doc/<id>/
func (c *Client) Document(ctx context.Context, id string) (*domain.Document, error) {
	if id == "" {
		return nil, errors.New("document id is required")
	}

	var doc domain.Document
	err := c.get(ctx, "/api/doc/"+url.PathEscape(id)+"/", nil, &doc)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("document %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("document %q: %w", id, err)
	}
	if doc.ID == "" {
		doc.ID = id
	}
	return &doc, nil
}

// Health runs GET /api/healthz/
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var h HealthResponse
	if err := c.get(ctx, "/api/healthz/", nil, &h); err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}
	return &h, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := *c.baseURL
	rawPath := strings.TrimRight(c.baseURL.EscapedPath(), "/") + path
	unescaped, err := url.PathUnescape(rawPath)
	if err != nil {
		return fmt.Errorf("invalid request path: %w", err)
	}
	u.Path, u.RawPath = unescaped, rawPath
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	se := &StatusError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return se
	}
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil && eb.Detail != "" {
		se.Detail = eb.Detail
	} else {
		se.Detail = strings.TrimSpace(string(body))
	}
	return se
}
