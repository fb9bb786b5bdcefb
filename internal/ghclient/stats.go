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
)

// FetchContributorStats fetches the per-contributor lifetime commit
// breakdown for one repository. The endpoint computes its answer
// asynchronously and may respond 202 ("still computing"), so this polls
// with a fixed delay for a bounded number of retries. Exhausting the
// retries, or any failure status, yields an empty breakdown for that one
// repository rather than an error.
func (c *Client) FetchContributorStats(ctx context.Context, owner, repo string) []schema.ContributorStat {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/stats/contributors",
		c.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	for attempt := 0; attempt <= contract.StatsPollRetries; attempt++ {
		stats, retry := c.contributorStatsOnce(ctx, endpoint)
		if !retry {
			return stats
		}
		if attempt == contract.StatsPollRetries {
			break
		}
		select {
		case <-ctx.Done():
			return []schema.ContributorStat{}
		case <-time.After(c.pollDelay):
		}
	}
	return []schema.ContributorStat{}
}

// contributorStatsOnce performs a single poll. retry is true only for a
// "still computing" response.
func (c *Client) contributorStatsOnce(ctx context.Context, endpoint string) (stats []schema.ContributorStat, retry bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return []schema.ContributorStat{}, false
	}
	c.applyHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return []schema.ContributorStat{}, false
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
			return []schema.ContributorStat{}, false
		}
		return stats, false
	case http.StatusAccepted:
		return nil, true
	default:
		// 204, 403, 404 and everything else: empty, not failed.
		return []schema.ContributorStat{}, false
	}
}
