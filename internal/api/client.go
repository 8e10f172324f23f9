package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	resourcePath     = "/reservations"
	defaultAPIBind   = "127.0.0.1:3001"
	defaultUserAgent = "reserva/0.1"
	defaultTimeout   = 5 * time.Second
)

// Client talks to the reservation HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client from a host:port or full URL. A zero timeout
// uses the default; the timeout doubles as the connectivity cutoff, so a
// hung request degrades into mirror fallback rather than blocking forever.
func NewClient(apiBind string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// List retrieves every reservation record.
func (c *Client) List(ctx context.Context) ([]Record, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Record
	if err := c.do(ctx, http.MethodGet, resourcePath, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Get retrieves a single reservation by id.
func (c *Client) Get(ctx context.Context, id string) (Record, error) {
	if c == nil {
		return Record{}, fmt.Errorf("client is nil")
	}
	var payload Record
	if err := c.do(ctx, http.MethodGet, itemPath(id), nil, &payload); err != nil {
		return Record{}, err
	}
	return payload, nil
}

// Create posts a new reservation and returns the server-assigned record.
func (c *Client) Create(ctx context.Context, body CreateBody) (Record, error) {
	if c == nil {
		return Record{}, fmt.Errorf("client is nil")
	}
	var payload Record
	if err := c.do(ctx, http.MethodPost, resourcePath, body, &payload); err != nil {
		return Record{}, err
	}
	return payload, nil
}

// Patch partially updates a reservation and returns the updated record.
func (c *Client) Patch(ctx context.Context, id string, body PatchBody) (Record, error) {
	if c == nil {
		return Record{}, fmt.Errorf("client is nil")
	}
	var payload Record
	if err := c.do(ctx, http.MethodPatch, itemPath(id), body, &payload); err != nil {
		return Record{}, err
	}
	return payload, nil
}

// Delete removes a reservation. A 404 still counts as an application error;
// idempotency of removal is the store's concern, not the transport's.
func (c *Client) Delete(ctx context.Context, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

func itemPath(id string) string {
	return resourcePath + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response reached us. This is the only branch that may trigger
		// the store's mirror fallback.
		return &ConnError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &StatusError{Status: resp.StatusCode, Path: path}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
