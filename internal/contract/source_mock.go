package contract

import (
	"context"

	"github.com/isfarbaset/git-wrapped/schema"
	"github.com/stretchr/testify/mock"
)

// MockStatsSource is a mock implementation of StatsSource for testing.
type MockStatsSource struct {
	mock.Mock
}

var _ StatsSource = &MockStatsSource{} // Compile-time check

// FetchProfile implements the StatsSource interface.
func (m *MockStatsSource) FetchProfile(ctx context.Context, username string) (*schema.Profile, error) {
	args := m.Called(ctx, username)
	profile, _ := args.Get(0).(*schema.Profile)
	return profile, args.Error(1)
}

// FetchRepos implements the StatsSource interface.
func (m *MockStatsSource) FetchRepos(ctx context.Context, username string) []schema.Repo {
	args := m.Called(ctx, username)
	repos, _ := args.Get(0).([]schema.Repo)
	return repos
}

// FetchEvents implements the StatsSource interface.
func (m *MockStatsSource) FetchEvents(ctx context.Context, username string) []schema.Event {
	args := m.Called(ctx, username)
	events, _ := args.Get(0).([]schema.Event)
	return events
}

// FetchContributorStats implements the StatsSource interface.
func (m *MockStatsSource) FetchContributorStats(ctx context.Context, owner, repo string) []schema.ContributorStat {
	args := m.Called(ctx, owner, repo)
	stats, _ := args.Get(0).([]schema.ContributorStat)
	return stats
}

// SearchCount implements the StatsSource interface.
func (m *MockStatsSource) SearchCount(ctx context.Context, query string) *int {
	args := m.Called(ctx, query)
	count, _ := args.Get(0).(*int)
	return count
}

// CheckRateLimit implements the StatsSource interface.
func (m *MockStatsSource) CheckRateLimit(ctx context.Context) *schema.RateBudget {
	args := m.Called(ctx)
	budget, _ := args.Get(0).(*schema.RateBudget)
	return budget
}

// HasToken implements the StatsSource interface.
func (m *MockStatsSource) HasToken() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockCalendarSource is a mock implementation of CalendarSource for testing.
type MockCalendarSource struct {
	mock.Mock
}

var _ CalendarSource = &MockCalendarSource{} // Compile-time check

// FetchDailyContributions implements the CalendarSource interface.
func (m *MockCalendarSource) FetchDailyContributions(ctx context.Context, username string) []schema.DailyContribution {
	args := m.Called(ctx, username)
	daily, _ := args.Get(0).([]schema.DailyContribution)
	return daily
}
