package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/Muhammad-true/mm-shop-admin/internal/session"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
)

// Client wraps every outbound call to the mm-shop API. It attaches the
// bearer token when the session store holds one, and normalizes failures
// into apperr values. It never retries and never performs navigation:
// a 401 surfaces as a StaleSession error for the caller to act on.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store
}

func NewClient(baseURL string, sessions *session.Store) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
		sessions: sessions,
	}
}

// WithHTTPClient swaps the underlying transport (tests, custom timeouts).
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// Request performs one JSON round-trip. body may be nil. The returned
// payload is the raw response body on 2xx.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, apperr.Wrap(fmt.Errorf("encode request body: %w", err))
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), rd)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

// Upload performs a multipart file upload to the given path. Field name
// matches what the mm-shop upload endpoint expects.
func (c *Client) Upload(ctx context.Context, path, field, filename, contentType string, content io.Reader) (json.RawMessage, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, apperr.Wrap(err)
	}
	if err := mw.Close(); err != nil {
		return nil, apperr.Wrap(err)
	}
	_ = contentType // the server sniffs per-part types; kept for interface parity

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), &buf)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	// Consult the store immediately before sending; no token is cached
	// across calls.
	if tok := c.sessions.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.NetworkErr(err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, apperr.NetworkErr(err)
	}

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return raw, nil
	}

	msg := errorMessage(raw, res.StatusCode)
	if res.StatusCode == http.StatusUnauthorized {
		return nil, apperr.StaleSessionErr(msg)
	}
	return nil, apperr.APIErr(res.StatusCode, msg)
}

func (c *Client) url(path string) string {
	path = "/" + strings.TrimLeft(path, "/")
	return c.baseURL + path
}

// errorMessage digs a human message out of a failure body: JSON
// message/error field, then raw text, then a generic fallback.
func errorMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	if txt := strings.TrimSpace(string(raw)); txt != "" && len(txt) <= 512 && !strings.HasPrefix(txt, "<") {
		return txt
	}
	return fmt.Sprintf("HTTP error %d", status)
}
