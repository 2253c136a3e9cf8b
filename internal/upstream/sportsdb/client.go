package sportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"fixtures-service/internal/upstream"
)

// Config controls how the client reaches the API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches raw events and reference data from TheSportsDB-style API.
// It decodes wire records and flattens them into upstream.RawEvent; it does
// not interpret business fields.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// NextTeamEvents retrieves a team's upcoming events by numeric team ID.
func (c *Client) NextTeamEvents(ctx context.Context, teamID string) ([]upstream.RawEvent, error) {
	var payload eventsResponse
	if err := c.get(ctx, endpointNextTeam, url.Values{"id": {teamID}}, &payload); err != nil {
		return nil, &upstream.FetchError{ID: teamID, Err: err}
	}
	return mapEvents(payload.Events), nil
}

// NextLeagueEvents retrieves a league's upcoming events by numeric league ID.
func (c *Client) NextLeagueEvents(ctx context.Context, leagueID string) ([]upstream.RawEvent, error) {
	var payload eventsResponse
	if err := c.get(ctx, endpointNextLeague, url.Values{"id": {leagueID}}, &payload); err != nil {
		return nil, &upstream.FetchError{ID: leagueID, Err: err}
	}
	return mapEvents(payload.Events), nil
}

// SeasonEvents retrieves a league's full schedule for one season.
func (c *Client) SeasonEvents(ctx context.Context, leagueID, season string) ([]upstream.RawEvent, error) {
	q := url.Values{"id": {leagueID}, "s": {season}}
	var payload eventsResponse
	if err := c.get(ctx, endpointSeason, q, &payload); err != nil {
		return nil, &upstream.FetchError{ID: leagueID, Err: err}
	}
	return mapEvents(payload.Events), nil
}

// TeamBadge resolves a team's badge URL by numeric team ID. An unknown team
// yields an empty URL, not an error.
func (c *Client) TeamBadge(ctx context.Context, teamID string) (string, error) {
	var payload teamsResponse
	if err := c.get(ctx, endpointTeam, url.Values{"id": {teamID}}, &payload); err != nil {
		return "", &upstream.FetchError{ID: teamID, Err: err}
	}
	if len(payload.Teams) == 0 {
		return "", nil
	}
	return badgeFromTeam(payload.Teams[0]), nil
}

// LeagueLogo resolves a league's logo URL by numeric league ID.
func (c *Client) LeagueLogo(ctx context.Context, leagueID string) (string, error) {
	var payload leaguesResponse
	if err := c.get(ctx, endpointLeague, url.Values{"id": {leagueID}}, &payload); err != nil {
		return "", &upstream.FetchError{ID: leagueID, Err: err}
	}
	if len(payload.Leagues) == 0 {
		return "", nil
	}
	return logoFromLeague(payload.Leagues[0]), nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(endpoint), nil)
	if err != nil {
		return err
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%s: decode: %w", endpoint, err)
	}
	return nil
}

func (c *Client) endpointURL(endpoint string) string {
	return c.baseURL + "/api/v1/json/" + c.apiKey + "/" + endpoint
}
