package core

import (
	"testing"
	"time"

	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/isfarbaset/git-wrapped/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func intPtr(n int) *int { return &n }

func contributors(login string, total int) []schema.ContributorStat {
	c := schema.ContributorStat{Total: total}
	c.Author.Login = login
	return []schema.ContributorStat{c}
}

func TestAggregateLifetime(t *testing.T) {
	ctx := t.Context()

	t.Run("all sources succeed", func(t *testing.T) {
		src := &contract.MockStatsSource{}
		src.On("HasToken").Return(false)
		src.On("SearchCount", mock.Anything, "author:octo type:pr is:public").Return(intPtr(12))
		src.On("SearchCount", mock.Anything, "author:octo type:pr is:merged is:public").Return(intPtr(9))
		src.On("SearchCount", mock.Anything, "author:octo type:issue is:public").Return(intPtr(4))
		src.On("SearchCount", mock.Anything, "author:octo type:issue is:closed is:public").Return(intPtr(3))
		src.On("FetchContributorStats", mock.Anything, "octo", "alpha").Return(contributors("Octo", 30))
		src.On("FetchContributorStats", mock.Anything, "octo", "beta").Return(contributors("octo", 12))

		repos := []schema.Repo{
			{Name: "alpha", PushedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "beta", PushedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "forked", Fork: true},
		}

		lifetime := AggregateLifetime(ctx, src, "octo", repos)

		assert.Equal(t, 42, *lifetime.Commits, "Commit total should sum matched contributor stats")
		assert.Equal(t, 12, *lifetime.PRs)
		assert.Equal(t, 9, *lifetime.PRsMerged)
		assert.Equal(t, 4, *lifetime.Issues)
		assert.Equal(t, 3, *lifetime.IssuesClosed)
		assert.Equal(t, map[string]int{"alpha": 30, "beta": 12}, lifetime.RepoCommits)
		src.AssertExpectations(t)
	})

	t.Run("one failed query nulls only its counter", func(t *testing.T) {
		src := &contract.MockStatsSource{}
		src.On("HasToken").Return(false)
		src.On("SearchCount", mock.Anything, "author:octo type:pr is:public").Return(nil)
		src.On("SearchCount", mock.Anything, "author:octo type:pr is:merged is:public").Return(intPtr(9))
		src.On("SearchCount", mock.Anything, "author:octo type:issue is:public").Return(intPtr(4))
		src.On("SearchCount", mock.Anything, "author:octo type:issue is:closed is:public").Return(intPtr(3))

		lifetime := AggregateLifetime(ctx, src, "octo", nil)

		assert.Nil(t, lifetime.PRs, "Failed query stays unavailable")
		assert.Equal(t, 9, *lifetime.PRsMerged)
		assert.Equal(t, 4, *lifetime.Issues)
		assert.Equal(t, 3, *lifetime.IssuesClosed)
	})

	t.Run("no owned repos means unavailable commits", func(t *testing.T) {
		src := &contract.MockStatsSource{}
		src.On("SearchCount", mock.Anything, mock.Anything).Return(nil)

		lifetime := AggregateLifetime(ctx, src, "octo", []schema.Repo{{Name: "f", Fork: true}})

		assert.Nil(t, lifetime.Commits, "No owned repos gives no commit evidence")
		assert.Empty(t, lifetime.RepoCommits)
		src.AssertNotCalled(t, "FetchContributorStats", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owned repos with no matches confirm zero", func(t *testing.T) {
		src := &contract.MockStatsSource{}
		src.On("HasToken").Return(false)
		src.On("SearchCount", mock.Anything, mock.Anything).Return(nil)
		src.On("FetchContributorStats", mock.Anything, "octo", "alpha").Return(contributors("someone-else", 7))

		lifetime := AggregateLifetime(ctx, src, "octo", []schema.Repo{{Name: "alpha"}})

		assert.Equal(t, 0, *lifetime.Commits, "Owned repos exist, so zero is confirmed")
		assert.Empty(t, lifetime.RepoCommits)
	})

	t.Run("repo cap keeps most recently pushed", func(t *testing.T) {
		src := &contract.MockStatsSource{}
		src.On("HasToken").Return(false)
		src.On("SearchCount", mock.Anything, mock.Anything).Return(nil)

		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		repos := make([]schema.Repo, 0, contract.StatsRepoCap+2)
		for i := 0; i < contract.StatsRepoCap+2; i++ {
			name := string(rune('a' + i))
			repos = append(repos, schema.Repo{Name: name, PushedAt: base.AddDate(0, 0, i)})
		}
		// Only the StatsRepoCap most recent repos ("c".."g") get a call.
		for i := 2; i < contract.StatsRepoCap+2; i++ {
			src.On("FetchContributorStats", mock.Anything, "octo", string(rune('a'+i))).Return(contributors("octo", 1))
		}

		lifetime := AggregateLifetime(ctx, src, "octo", repos)

		assert.Equal(t, contract.StatsRepoCap, *lifetime.Commits)
		assert.Len(t, lifetime.RepoCommits, contract.StatsRepoCap)
		src.AssertNotCalled(t, "FetchContributorStats", mock.Anything, "octo", "a")
		src.AssertNotCalled(t, "FetchContributorStats", mock.Anything, "octo", "b")
	})
}
