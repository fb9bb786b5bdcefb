package core

import (
	"context"
	"sync"

	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/isfarbaset/git-wrapped/internal/ghclient"
	"github.com/isfarbaset/git-wrapped/schema"
)

// CardOptions controls a single card build.
type CardOptions struct {
	Username string
	// NoCache skips both the cache lookup and the cache write.
	NoCache bool
}

// BuildCard produces the full card result for one account.
//
// The run is cache-first: a fresh cached card short-circuits the network
// entirely. Otherwise the rate budget decides between the full plan and a
// degraded minimal plan, and the result is cached only when every lenient
// source succeeded, so a later retry can still fill the gaps.
func BuildCard(ctx context.Context, src contract.StatsSource, cal contract.CalendarSource, cache contract.CacheManager, opts CardOptions) (*schema.CardResult, error) {
	if err := contract.ValidateUsername(opts.Username); err != nil {
		return nil, err
	}

	if !opts.NoCache {
		if card := checkCacheHit(cache, opts.Username); card != nil {
			result := &schema.CardResult{
				Profile:   card.Profile,
				Repos:     card.Repos,
				Stats:     card.Stats,
				Daily:     card.Daily,
				FromCache: true,
			}
			decorate(result)
			return result, nil
		}
	}

	if degraded(ctx, src) {
		result, err := buildDegraded(ctx, src, cal, opts.Username)
		if err != nil {
			return nil, err
		}
		decorate(result)
		return result, nil
	}

	result, err := buildFull(ctx, src, cal, opts.Username)
	if err != nil {
		return nil, err
	}
	decorate(result)

	if !opts.NoCache && !result.Stats.Partial {
		storeCard(cache, opts.Username, &schema.CachedCard{
			Profile: result.Profile,
			Repos:   result.Repos,
			Stats:   result.Stats,
			Daily:   result.Daily,
		})
	}
	return result, nil
}

// degraded reports whether the run must fall back to the minimal plan.
// Only uncredentialed runs are subject to the budget floor, and a failed
// budget probe is treated as budget available.
func degraded(ctx context.Context, src contract.StatsSource) bool {
	if src.HasToken() {
		return false
	}
	budget := src.CheckRateLimit(ctx)
	return budget != nil && budget.Remaining < contract.BudgetThreshold
}

// buildFull runs the complete aggregation plan: profile (strict), repos
// and events (lenient, concurrent), the lifetime totals, and the daily
// contribution calendar.
func buildFull(ctx context.Context, src contract.StatsSource, cal contract.CalendarSource, username string) (*schema.CardResult, error) {
	profile, err := src.FetchProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	var (
		repos  []schema.Repo
		events []schema.Event
		daily  []schema.DailyContribution
		wg     sync.WaitGroup
	)
	wg.Go(func() { repos = src.FetchRepos(ctx, username) })
	wg.Go(func() { events = src.FetchEvents(ctx, username) })
	wg.Go(func() { daily = cal.FetchDailyContributions(ctx, username) })
	wg.Wait()

	lifetime := AggregateLifetime(ctx, src, username, repos)
	stats := ComputeStats(events, repos, profile, lifetime, daily)

	return &schema.CardResult{Profile: profile, Repos: repos, Stats: stats, Daily: daily}, nil
}

// buildDegraded runs the minimal plan for a budget-starved run: the free
// calendar source plus the single profile call. If the calendar is also
// unavailable there is nothing worth rendering, so the run fails with the
// rate-limit error rather than producing an all-null card.
func buildDegraded(ctx context.Context, src contract.StatsSource, cal contract.CalendarSource, username string) (*schema.CardResult, error) {
	daily := cal.FetchDailyContributions(ctx, username)
	if len(daily) == 0 {
		return nil, ghclient.ErrRateLimited
	}

	profile, err := src.FetchProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(nil, nil, profile, schema.EmptyLifetimeStats(), daily)
	return &schema.CardResult{Profile: profile, Stats: stats, Daily: daily, Degraded: true}, nil
}

// decorate fills in the rule-derived card fields from the base result.
func decorate(result *schema.CardResult) {
	result.Languages = ComputeLanguages(result.Repos)
	result.Personality = Personality(result.Stats, len(result.Languages))
	result.PeakTime = PeakTime(result.Stats.Hourly)
}
