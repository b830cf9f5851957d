package gutendex

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://gutendex.com"

type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	RPS        float64
	MaxRetries int
	// Progress receives a download indicator for each response body.
	// Nil disables it.
	Progress io.Writer
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
	progress   io.Writer
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	progress := cfg.Progress
	if progress == nil {
		progress = io.Discard
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: NewLoggingTransport(http.DefaultTransport),
		},
		userAgent:  cfg.UserAgent,
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(limit, 1),
		maxRetries: cfg.MaxRetries,
		progress:   progress,
	}
}

// SearchURL builds the title search endpoint for term. Only spaces are
// encoded, the rest of the term is passed through untouched.
func (c *Client) SearchURL(term string) string {
	return c.baseURL + "/books?search=" + strings.ReplaceAll(term, " ", "%20")
}

// Fetch performs a GET on url and returns the response body as text.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		body, retryable, err := c.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return "", err
		}
		lastErr = err
	}
	if c.maxRetries == 0 {
		return "", lastErr
	}
	return "", fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, url string) (string, bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retryable, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	bar := progressbar.NewOptions64(resp.ContentLength,
		progressbar.OptionSetWriter(c.progress),
		progressbar.OptionSetDescription("fetching catalog"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.Body); err != nil {
		return "", true, fmt.Errorf("read body: %w", err)
	}
	_ = bar.Finish()

	return buf.String(), false, nil
}
