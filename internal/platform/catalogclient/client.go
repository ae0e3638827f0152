package catalogclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrNotFound is returned when the catalog answers 404.
var ErrNotFound = errors.New("catalog: not found")

// Config controls how the client reaches the catalog's public endpoints.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RPS        float64
	MaxRetries int
	// Backoff is the delay before the first retry; it doubles on each attempt.
	Backoff time.Duration
}

// Client fetches the public catalog endpoints over HTTP and returns their raw JSON.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 100 * time.Millisecond
	}
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		limiter:    rate.NewLimiter(limit, 1),
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.Backoff,
	}
}

func (c *Client) All(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/")
}

func (c *Client) ByISBN(ctx context.Context, isbn string) (json.RawMessage, error) {
	return c.get(ctx, "/isbn/"+url.PathEscape(isbn))
}

func (c *Client) ByAuthor(ctx context.Context, author string) (json.RawMessage, error) {
	return c.get(ctx, "/author/"+url.PathEscape(author))
}

func (c *Client) ByTitle(ctx context.Context, title string) (json.RawMessage, error) {
	return c.get(ctx, "/title/"+url.PathEscape(title))
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: base, 2*base, 4*base...
			wait := c.backoff * time.Duration(1<<uint(i-1))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, retry, err := c.do(ctx, path)
		if err == nil {
			return body, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

// do performs a single request. retry reports whether the failure is transient.
func (c *Client) do(ctx context.Context, path string) (body json.RawMessage, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}
	if !json.Valid(raw) {
		return nil, false, errors.New("catalog: response is not valid JSON")
	}
	return raw, false, nil
}
