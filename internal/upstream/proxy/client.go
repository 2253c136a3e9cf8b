package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fixtures-service/internal/upstream"
)

const defaultHTTPTimeout = 10 * time.Second

// Config controls how the client reaches the schedule proxy.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches team schedules from the path-based internal proxy keyed by
// team slug and league slug. The proxy returns the richer nested event shape
// with competition and competitor sub-records, flattened here into RawEvent.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a proxy client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// TeamSchedule retrieves a team's schedule by slug within a league.
func (c *Client) TeamSchedule(ctx context.Context, slug, league string) ([]upstream.RawEvent, error) {
	endpoint := fmt.Sprintf("%s/sports/soccer/%s/teams/%s/schedule",
		c.baseURL, url.PathEscape(league), url.PathEscape(slug))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &upstream.FetchError{ID: slug, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &upstream.FetchError{ID: slug, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &upstream.FetchError{
			ID:  slug,
			Err: fmt.Errorf("schedule: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &upstream.FetchError{ID: slug, Err: fmt.Errorf("schedule: decode: %w", err)}
	}
	return mapEvents(payload.Events), nil
}
