package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"IntelFeed/internal/config"
)

// maxBodyBytes caps how much of a response is read; scraped pages beyond
// this size carry nothing the extractors need.
const maxBodyBytes = 4 << 20

// Client issues single bounded outbound requests toward scraped origins.
// There are no retries at this layer; callers fall through to their own
// fallback path on any failure.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
	logger    *slog.Logger
}

// NewClient builds a client from configuration; a nil logger disables logging.
func NewClient(cfg config.FetchConfig, logger *slog.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 4
	}

	return &Client{
		http:      &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(rps), int(rps)+1),
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Get fetches rawURL and returns the body on a 2xx response. Transport
// errors, timeouts and non-2xx statuses all come back as errors; callers
// must treat an error and an empty body identically.
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%s returned %s", rawURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rawURL, err)
	}

	if c.logger != nil {
		c.logger.Debug("fetched", "url", rawURL, "bytes", len(body))
	}
	return string(body), nil
}
