// Package gateway is the HTTP client for the claim tracker backend. Every
// operation is a single best-effort request: no retries, no batching, and any
// failure is normalized to one display-ready message.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jgkirkwood/claimtrack/internal/auth"
)

// fallbackGeneric covers failure shapes nothing else can describe.
const fallbackGeneric = "An unexpected error occurred"

// Error is a normalized backend or transport failure. Message is suitable for
// direct display.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

type Client struct {
	base    string
	client  *http.Client
	session *auth.Session
}

// NewClient builds a client for the backend at baseURL. session may be nil;
// when present and holding a user, requests carry X-User-Id so the backend
// can stamp actor fields.
func NewClient(baseURL string, session *auth.Session) *Client {
	return &Client{
		base:    strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		session: session,
	}
}

// do runs one exchange. out, when non-nil, receives the decoded 2xx body.
// Failures are normalized in order of precedence: the error field of the
// response body, then the transport error's own message, then fallback.
func (c *Client) do(ctx context.Context, method, path string, body, out any, fallback string) error {
	var reader io.Reader

	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return &Error{Message: fallback}
		}

		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return &Error{Message: fallback}
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.session != nil {
		if u := c.session.CurrentUser(); u != nil {
			req.Header.Set("X-User-Id", u.ID)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if msg := err.Error(); msg != "" {
			return &Error{Message: msg}
		}

		return &Error{Message: fallback}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Message: errorMessage(resp, fallback)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Message: fallback}
		}
	}

	return nil
}

// errorMessage extracts the structured message of a failed response. An
// absent or empty embedded message falls through to the fallback rather than
// being surfaced as blank.
func errorMessage(resp *http.Response, fallback string) string {
	var body struct {
		Error string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}

	return fallback
}

func (c *Client) get(ctx context.Context, path string, out any, fallback string) error {
	return c.do(ctx, http.MethodGet, path, nil, out, fallback)
}

func (c *Client) post(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPost, path, body, out, fallback)
}

func (c *Client) patch(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPatch, path, body, out, fallback)
}

func (c *Client) delete(ctx context.Context, path string, fallback string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, fallback)
}
