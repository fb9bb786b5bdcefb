// Package ghclient implements the upstream source fetchers against the
// GitHub REST and Search APIs.
//
// The profile fetch is strict: it returns typed errors and aborts the run.
// Every other fetcher is lenient: transport failures, rate limiting and
// missing data all degrade to a nil result so the aggregation run can
// continue with reduced fidelity.
package ghclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/isfarbaset/git-wrapped/schema"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.github.com"
	userAgent      = "git-wrapped/1.0"
	acceptHeader   = "application/vnd.github+json"
)

// Client talks to the GitHub REST and Search APIs.
type Client struct {
	client    *http.Client
	baseURL   string
	token     string
	pollDelay time.Duration

	// The search API has its own, much lower rate ceiling (10 req/min
	// unauthenticated), so search calls are paced client-side.
	searchLimiter *rate.Limiter
}

var _ contract.StatsSource = &Client{} // Compile-time check

// New creates a Client. An empty token means uncredentialed baseline access.
func New(token string) *Client {
	return &Client{
		client:        &http.Client{Timeout: 10 * time.Second},
		baseURL:       defaultBaseURL,
		token:         token,
		pollDelay:     contract.StatsPollDelay,
		searchLimiter: rate.NewLimiter(rate.Every(6*time.Second), 4),
	}
}

// HasToken reports whether an elevated-access credential is configured.
func (c *Client) HasToken() bool {
	return c.token != ""
}

func (c *Client) applyHeaders(req *http.Request) {
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// getJSON performs a lenient GET: any transport error, non-2xx status or
// decode failure reports false instead of an error.
func (c *Client) getJSON(ctx context.Context, endpoint string, v any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}
	c.applyHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}
	return json.NewDecoder(resp.Body).Decode(v) == nil
}

// FetchProfile fetches the account profile. This is the only strict fetch:
// failures propagate as typed errors and abort the whole run.
func (c *Client) FetchProfile(ctx context.Context, username string) (*schema.Profile, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	c.applyHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var profile schema.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

// FetchRepos fetches all repositories owned by the account, page by page.
// A first-page failure makes the whole source unavailable (nil); a
// later-page failure returns the pages accumulated so far.
func (c *Client) FetchRepos(ctx context.Context, username string) []schema.Repo {
	var repos []schema.Repo
	firstPage := true

	for page := 1; ; page++ {
		endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d&page=%d&type=owner&sort=updated",
			c.baseURL, url.PathEscape(username), contract.PageSize, page)

		var batch []schema.Repo
		if !c.getJSON(ctx, endpoint, &batch) {
			if firstPage {
				return nil
			}
			return repos
		}
		firstPage = false

		repos = append(repos, batch...)
		if len(batch) < contract.PageSize {
			return repos
		}
	}
}

// FetchEvents fetches the account's recent public events. Page depth is
// capped at one page without a credential and ten with one. Failure
// semantics match FetchRepos.
func (c *Client) FetchEvents(ctx context.Context, username string) []schema.Event {
	maxPages := contract.EventPageCap
	if c.HasToken() {
		maxPages = contract.EventPageCapToken
	}

	var events []schema.Event
	firstPage := true

	for page := 1; page <= maxPages; page++ {
		endpoint := fmt.Sprintf("%s/users/%s/events/public?per_page=%d&page=%d",
			c.baseURL, url.PathEscape(username), contract.PageSize, page)

		var batch []schema.Event
		if !c.getJSON(ctx, endpoint, &batch) {
			if firstPage {
				return nil
			}
			return events
		}
		firstPage = false

		if len(batch) == 0 {
			break
		}
		events = append(events, batch...)
		if len(batch) < contract.PageSize {
			break
		}
	}
	return events
}

// SearchCount runs one search-aggregate query and returns its total count.
// Nil means the query failed; callers must not conflate that with zero hits.
func (c *Client) SearchCount(ctx context.Context, query string) *int {
	if err := c.searchLimiter.Wait(ctx); err != nil {
		return nil
	}

	endpoint := fmt.Sprintf("%s/search/issues?q=%s&per_page=1", c.baseURL, url.QueryEscape(query))

	var result struct {
		TotalCount int `json:"total_count"`
	}
	if !c.getJSON(ctx, endpoint, &result) {
		return nil
	}
	return &result.TotalCount
}

// CheckRateLimit probes the budget-inspection endpoint, which is free to
// call. Nil means the probe failed; callers should assume the budget is fine.
func (c *Client) CheckRateLimit(ctx context.Context) *schema.RateBudget {
	var result struct {
		Rate schema.RateBudget `json:"rate"`
	}
	if !c.getJSON(ctx, c.baseURL+"/rate_limit", &result) {
		return nil
	}
	return &result.Rate
}
