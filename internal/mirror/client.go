// Package mirror downloads Contents indexes from a Debian mirror. Transient
// failures are retried with exponential backoff; everything the mirror
// refuses outright surfaces as a NetworkError without retrying.
package mirror

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gioannidis/deb-package-statistics/internal/logtrace"
)

// NetworkError reports a failed fetch from the mirror. Status is zero when
// the request never completed.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: mirror returned status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client fetches compressed Contents indexes over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
}

// NewClient creates a mirror client for the given base URL
func NewClient(baseURL string, timeout time.Duration, maxRetries int) *Client {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries: uint64(maxRetries),
	}
}

// ContentsURL returns the mirror URL of the index for the given architecture
func (c *Client) ContentsURL(architecture string) string {
	return fmt.Sprintf("%s/Contents-%s.gz", c.baseURL, architecture)
}

// Download fetches the compressed index for the given architecture into
// destPath. The blob lands in a temp file first and is renamed into place
// only on success, so an interrupted download never poisons the cache.
func (c *Client) Download(ctx context.Context, architecture, destPath string) error {
	url := c.ContentsURL(architecture)

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)

	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		return c.fetch(ctx, url, destPath)
	}, b, func(err error, duration time.Duration) {
		logtrace.Warn(ctx, "retrying contents download", logtrace.Fields{
			logtrace.FieldModule:  "mirror",
			logtrace.FieldURL:     url,
			logtrace.FieldError:   err.Error(),
			logtrace.FieldAttempt: attempt,
			"backoff":             duration.String(),
		})
	})
}

func (c *Client) fetch(ctx context.Context, url, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return backoff.Permanent(fmt.Errorf("failed to create directory: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(&NetworkError{URL: url, Err: err})
	}
	req.Header.Set("User-Agent", "package-statistics")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= http.StatusInternalServerError:
		return &NetworkError{URL: url, Status: resp.StatusCode}
	default:
		// 4xx means the mirror does not carry this index; retrying won't help.
		return backoff.Permanent(&NetworkError{URL: url, Status: resp.StatusCode})
	}

	tmpPath := destPath + ".tmp"
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to create temp file: %w", err))
	}
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	if err := tmpFile.Close(); err != nil {
		return backoff.Permanent(fmt.Errorf("failed to close temp file: %w", err))
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return backoff.Permanent(fmt.Errorf("failed to move file: %w", err))
	}

	return nil
}
