package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fantasy-playoff-report/internal/domain"
	"fantasy-playoff-report/internal/domain/matchups"
	"fantasy-playoff-report/internal/domain/teams"
	"fantasy-playoff-report/internal/providers"
)

// Config controls how the espn client reaches the fantasy read API.
type Config struct {
	BaseURL    string
	ESPNS2     string
	SWID       string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches league data from the ESPN fantasy v3 read API and maps it to
// domain models. It implements providers.LeagueProvider.
type Client struct {
	baseURL    string
	creds      credentials
	userAgent  string
	httpClient httpDoer
}

// NewClient constructs an espn client. Credentials are attached only when
// both cookie values are configured; otherwise requests are anonymous.
func NewClient(cfg Config) *Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		creds:      credentials{s2: cfg.ESPNS2, swid: cfg.SWID},
		userAgent:  userAgent,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Credentialed reports whether requests will carry the session cookie pair.
func (c *Client) Credentialed() bool {
	return c.creds.valid()
}

// FetchLeague retrieves league settings and status.
func (c *Client) FetchLeague(ctx context.Context, leagueID, year int) (domain.League, error) {
	raw, err := c.fetchLeague(ctx, leagueID, year, viewSettings)
	if err != nil {
		return domain.League{}, err
	}
	return mapLeague(raw, leagueID, year), nil
}

// FetchTeams retrieves the league's teams with records and standings.
func (c *Client) FetchTeams(ctx context.Context, leagueID, year int) ([]teams.Team, error) {
	raw, err := c.fetchLeague(ctx, leagueID, year, viewTeam)
	if err != nil {
		return nil, err
	}
	return mapTeams(raw), nil
}

// FetchBoxScores retrieves one week's matchups. The team view is requested
// alongside the matchup view so sides can be resolved to names and seeds.
func (c *Client) FetchBoxScores(ctx context.Context, leagueID, year, week int) ([]matchups.BoxScore, error) {
	raw, err := c.fetchLeague(ctx, leagueID, year, viewMatchup, viewTeam)
	if err != nil {
		return nil, err
	}
	return mapBoxScores(raw, week), nil
}

func (c *Client) fetchLeague(ctx context.Context, leagueID, year int, views ...string) (leagueResponse, error) {
	req, err := c.buildRequest(ctx, leagueID, year, views)
	if err != nil {
		return leagueResponse{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return leagueResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return leagueResponse{}, &providers.RateLimitError{
			Provider:   Name,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return leagueResponse{}, fmt.Errorf("espn: league %d: unexpected status %d: %s",
			leagueID, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload leagueResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return leagueResponse{}, fmt.Errorf("espn: league %d: decode response: %w", leagueID, err)
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, leagueID, year int, views []string) (*http.Request, error) {
	url := fmt.Sprintf("%s/apis/v3/games/ffl/seasons/%d/segments/0/leagues/%d", c.baseURL, year, leagueID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for _, view := range views {
		q.Add("view", view)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	c.creds.apply(req)

	return req, nil
}

func parseRetryAfter(header http.Header) time.Duration {
	raw := strings.TrimSpace(header.Get("Retry-After"))
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
