package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Error string

const (
	ErrNoBaseURL  = Error("api base url is required")
	ErrBulkDelete = Error("failed to delete one or more records")
)

func (e Error) Error() string {
	return string(e)
}

const (
	apiPrefix         = "/api"
	requestIDHeader   = "X-Request-Id"
	defaultAPITimeout = 10 * time.Second
)

// HTTPError reports a non-2xx answer from the backend.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
}

// Error returns the response status text, which is what the screens display.
func (e *HTTPError) Error() string {
	return e.Status
}

// StatusText extracts the display text from an api error.
func StatusText(err error) string {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.Status
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// ClientConfig configures the backend client.
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the inventory REST backend.
type Client struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

// NewClient builds a client rooted at cfg.BaseURL.
func NewClient(cfg ClientConfig) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrNoBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultAPITimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		baseURL: base,
		client:  hc,
		log:     log.With("component", "api"),
	}, nil
}

// BaseURL returns the backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CheckAsset issues a HEAD request against an absolute or backend relative url.
func (c *Client) CheckAsset(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = c.baseURL + "/" + strings.TrimLeft(url, "/")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api: asset check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return &HTTPError{Method: http.MethodHead, Path: url, StatusCode: resp.StatusCode, Status: statusText(resp)}
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, target any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("api: encode payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	rid := uuid.NewString()
	req.Header.Set(requestIDHeader, rid)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "path", path, "request_id", rid, "error", err)
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.log.Debug("request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", rid,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &HTTPError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
		}
	}
	if target == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("api: decode %s: %w", path, err)
	}

	return nil
}

// deleteMany fans out one DELETE per id and waits for every request to settle.
func (c *Client) deleteMany(ctx context.Context, collection string, ids []int) error {
	var (
		wg       sync.WaitGroup
		mx       sync.Mutex
		firstErr error
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if err := c.do(ctx, http.MethodDelete, itemPath(collection, id), nil, nil); err != nil {
				mx.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mx.Unlock()
			}
		}(id)
	}
	wg.Wait()

	if firstErr != nil {
		return fmt.Errorf("%w: %w", ErrBulkDelete, firstErr)
	}

	return nil
}

func itemPath(collection string, id int) string {
	return fmt.Sprintf("%s/%d", collection, id)
}

// statusText returns the reason phrase without the numeric code, e.g. "Not Found".
func statusText(resp *http.Response) string {
	if txt := http.StatusText(resp.StatusCode); txt != "" {
		return txt
	}
	if _, after, ok := strings.Cut(resp.Status, " "); ok {
		return after
	}

	return resp.Status
}
