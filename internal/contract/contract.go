// Package contract provides interfaces and shared utilities for the
// git-wrapped CLI's internal architecture.
package contract

import (
	"context"

	"github.com/isfarbaset/git-wrapped/schema"
)

// StatsSource defines the upstream source fetchers for one hosting platform.
// This allows the aggregation core to be tested without network access.
//
// FetchProfile is the only strict fetch: its error aborts the run. Every
// other method is lenient and signals "source unavailable" with a nil
// result instead of an error, so a single failing source degrades the run
// rather than ending it.
type StatsSource interface {
	// FetchProfile returns the account profile, or a typed error
	// (ErrNotFound, ErrRateLimited, or an upstream status error).
	FetchProfile(ctx context.Context, username string) (*schema.Profile, error)

	// FetchRepos returns all repositories owned by the account, accumulated
	// across pages. A nil slice means the source was unavailable; later-page
	// failures return the pages gathered so far.
	FetchRepos(ctx context.Context, username string) []schema.Repo

	// FetchEvents returns the account's recent public events. Page depth
	// depends on credential presence. Nil means unavailable.
	FetchEvents(ctx context.Context, username string) []schema.Event

	// FetchContributorStats returns the per-contributor lifetime commit
	// breakdown for one repository, polling through "still computing"
	// responses. An empty slice means the data never materialized; that is
	// not a failure.
	FetchContributorStats(ctx context.Context, owner, repo string) []schema.ContributorStat

	// SearchCount runs one search-aggregate query and returns its total
	// count, or nil when the query failed.
	SearchCount(ctx context.Context, query string) *int

	// CheckRateLimit probes the cost-free budget endpoint. Nil means the
	// probe failed and callers should assume the budget is fine.
	CheckRateLimit(ctx context.Context) *schema.RateBudget

	// HasToken reports whether an elevated-access credential is configured.
	HasToken() bool
}

// CalendarSource fetches the daily contribution calendar from its own rate
// domain, independent of the primary API budget.
type CalendarSource interface {
	// FetchDailyContributions returns the full daily calendar for the
	// account, or nil when the source was unavailable.
	FetchDailyContributions(ctx context.Context, username string) []schema.DailyContribution
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetCardStore() CacheStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Delete(key string) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
