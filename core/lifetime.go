// Package core has the aggregation and compute logic for git-wrapped.
package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/isfarbaset/git-wrapped/schema"
)

// AggregateLifetime merges the search-aggregate and contributor-statistics
// sources into a single lifetime totals record. The four search queries and
// the commit aggregation run concurrently; each counter is independently
// nullable, so one query's failure never nulls out the others.
func AggregateLifetime(ctx context.Context, src contract.StatsSource, username string, repos []schema.Repo) schema.LifetimeStats {
	lifetime := schema.EmptyLifetimeStats()

	var wg sync.WaitGroup

	// Each goroutine writes a unique variable, which is safe without locks.
	wg.Go(func() {
		lifetime.PRs = src.SearchCount(ctx, fmt.Sprintf("author:%s type:pr is:public", username))
	})
	wg.Go(func() {
		lifetime.PRsMerged = src.SearchCount(ctx, fmt.Sprintf("author:%s type:pr is:merged is:public", username))
	})
	wg.Go(func() {
		lifetime.Issues = src.SearchCount(ctx, fmt.Sprintf("author:%s type:issue is:public", username))
	})
	wg.Go(func() {
		lifetime.IssuesClosed = src.SearchCount(ctx, fmt.Sprintf("author:%s type:issue is:closed is:public", username))
	})
	wg.Go(func() {
		lifetime.Commits, lifetime.RepoCommits = aggregateCommits(ctx, src, username, repos)
	})
	wg.Wait()

	return lifetime
}

// aggregateCommits folds per-repository contributor statistics into a
// commit total attributed to the account. Only owned (non-fork) repos
// count, most recently pushed first, capped to bound request volume.
// Once any owned repos exist the total starts at a confirmed zero rather
// than null; unmatched or failed repos simply contribute nothing.
func aggregateCommits(ctx context.Context, src contract.StatsSource, username string, repos []schema.Repo) (*int, map[string]int) {
	repoCommits := map[string]int{}

	owned := make([]schema.Repo, 0, len(repos))
	for _, r := range repos {
		if !r.Fork {
			owned = append(owned, r)
		}
	}
	if len(owned) == 0 {
		return nil, repoCommits
	}

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].PushedAt.After(owned[j].PushedAt)
	})

	repoCap := contract.StatsRepoCap
	if src.HasToken() {
		repoCap = contract.StatsRepoCapToken
	}
	if len(owned) > repoCap {
		owned = owned[:repoCap]
	}

	total := 0
	results := make([][]schema.ContributorStat, len(owned))

	// Fixed-size concurrent batches, serialized batch-to-batch, keep the
	// in-flight request count bounded.
	for start := 0; start < len(owned); start += contract.StatsBatchSize {
		end := min(start+contract.StatsBatchSize, len(owned))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			idx := i
			wg.Go(func() {
				results[idx] = src.FetchContributorStats(ctx, username, owned[idx].Name)
			})
		}
		wg.Wait()
	}

	for i, contributors := range results {
		for _, c := range contributors {
			if strings.EqualFold(c.Author.Login, username) {
				repoCommits[owned[i].Name] = c.Total
				total += c.Total
				break
			}
		}
	}

	return &total, repoCommits
}
