// Package api wraps the agenda backend's JSON REST surface behind typed
// verb helpers. Every failure is an *Error: non-2xx responses carry the
// HTTP status and the response body text, transport failures carry status
// zero and wrap the underlying cause.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Error is the single error shape surfaced by the client.
type Error struct {
	// Status is the HTTP status code, or 0 for transport failures.
	Status int
	// Body is the response body text (or the status text when empty).
	Body string
	// cause is the wrapped transport error, when Status == 0.
	cause error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("falha ao se comunicar com a API: %v", e.cause)
	}
	return fmt.Sprintf("erro %d: %s", e.Status, e.Body)
}

func (e *Error) Unwrap() error { return e.cause }

// Client talks to one backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client for baseURL. A nil httpClient gets a sane default.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// BaseURL returns the configured backend host.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) Put(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPut, path, payload, out)
}

func (c *Client) Patch(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPatch, path, payload, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return &Error{cause: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{cause: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return &Error{cause: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		text, _ := io.ReadAll(res.Body)
		msg := strings.TrimSpace(string(text))
		if msg == "" {
			msg = res.Status
		}
		return &Error{Status: res.StatusCode, Body: msg}
	}

	// 204 resolves to an empty value, never a decode attempt
	if res.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &Error{cause: err}
	}
	return nil
}
