package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	"github.com/bondwatch-lab/bondwatch/internal/core/storage"
)

// PerCountyFetcher reads the live per-county totals for one window.
type PerCountyFetcher interface {
	FetchPerCounty(ctx context.Context, window bucket.Window) ([]storage.CountyTotal, error)
}

// APIClient calls a running dashboard API.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a client for the dashboard API at baseURL.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type perCountyBody struct {
	Window   string                `json:"window"`
	Counties []storage.CountyTotal `json:"counties"`
}

// FetchPerCounty calls GET /dashboard/per-county?window=<window>.
func (c *APIClient) FetchPerCounty(ctx context.Context, window bucket.Window) ([]storage.CountyTotal, error) {
	endpoint := fmt.Sprintf("%s/dashboard/per-county?window=%s", c.baseURL, url.QueryEscape(string(window)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	// Compare against live totals, not the dashboard response cache.
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("per-county %s: %w", window, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("per-county %s: unexpected status %d: %s", window, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var body perCountyBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("per-county %s: decode response: %w", window, err)
	}
	if body.Window != string(window) {
		return nil, fmt.Errorf("per-county %s: API answered for window %q", window, body.Window)
	}
	return body.Counties, nil
}
