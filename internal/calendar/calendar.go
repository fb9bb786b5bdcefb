// Package calendar fetches the daily contribution calendar from a
// third-party mirror of the profile contribution graph. It lives in its
// own rate domain, so failures here are independent of the primary API
// budget and never change the fetch plan.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/isfarbaset/git-wrapped/schema"
)

const defaultBaseURL = "https://github-contributions-api.jogruber.de/v4"

// Client fetches daily contribution calendars.
type Client struct {
	client  *http.Client
	baseURL string
}

var _ contract.CalendarSource = &Client{} // Compile-time check

// New creates a calendar Client.
func New() *Client {
	return &Client{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
	}
}

// FetchDailyContributions returns the account's full daily contribution
// history, or nil when the source was unavailable.
func (c *Client) FetchDailyContributions(ctx context.Context, username string) []schema.DailyContribution {
	endpoint := fmt.Sprintf("%s/%s?y=all", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}

	var result struct {
		Contributions []schema.DailyContribution `json:"contributions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil
	}
	if len(result.Contributions) == 0 {
		return nil
	}
	return result.Contributions
}
