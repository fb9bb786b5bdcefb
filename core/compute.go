package core

import (
	"sort"
	"strings"
	"time"

	"github.com/isfarbaset/git-wrapped/schema"
)

// dateKeyFormat is the YYYY-MM-DD form shared with the contribution calendar.
const dateKeyFormat = "2006-01-02"

// secondaryEvents contribute to the active-date set and hourly buckets
// only. They never count toward monthly/weekday buckets or repository
// participation.
var secondaryEvents = map[string]bool{
	schema.CreateEvent:        true,
	schema.DeleteEvent:        true,
	schema.WatchEvent:         true,
	schema.ForkEvent:          true,
	schema.IssueCommentEvent:  true,
	schema.ReviewEvent:        true,
	schema.ReviewCommentEvent: true,
}

// ComputeStats folds the raw source data into the final statistics record.
// It is a pure function of its inputs apart from reading today's date for
// the current-streak cutoff.
//
// A nil events or repos slice means that source failed outright and sets
// the matching failure flag; an empty slice is a confirmed "nothing there"
// and is not a failure. The profile is required (its fetch is strict).
func ComputeStats(events []schema.Event, repos []schema.Repo, profile *schema.Profile, lifetime schema.LifetimeStats, daily []schema.DailyContribution) *schema.Stats {
	return computeStatsAt(events, repos, profile, lifetime, daily, time.Now().UTC().Format(dateKeyFormat))
}

func computeStatsAt(events []schema.Event, repos []schema.Repo, profile *schema.Profile, lifetime schema.LifetimeStats, daily []schema.DailyContribution, today string) *schema.Stats {
	reposFailed := repos == nil
	eventsFailed := events == nil

	stats := &schema.Stats{
		Commits:      lifetime.Commits,
		PRs:          lifetime.PRs,
		PRsMerged:    lifetime.PRsMerged,
		Issues:       lifetime.Issues,
		IssuesClosed: lifetime.IssuesClosed,
		RepoCommits:  copyCounts(lifetime.RepoCommits),

		Monthly: map[string]int{},
		Weekday: map[string]int{},
		Hourly:  map[int]int{},

		ActiveDates:      schema.NewStringSet(),
		ReposContributed: schema.NewStringSet(),

		PublicRepos: profile.PublicRepos,
		Followers:   profile.Followers,
		Following:   profile.Following,

		ReposFailed:  reposFailed,
		EventsFailed: eventsFailed,
		Partial:      reposFailed || eventsFailed,
	}

	// Stars and forks come from owned repos only. They stay nil when the
	// repository source itself failed; an empty list is a confirmed zero.
	if !reposFailed {
		stars, forks := 0, 0
		for _, r := range repos {
			if !r.Fork {
				stars += r.Stargazers
				forks += r.Forks
			}
		}
		stats.Stars = &stars
		stats.Forks = &forks
	}

	for _, ev := range events {
		foldEvent(stats, ev)
	}

	if len(daily) > 0 {
		sorted := make([]schema.DailyContribution, len(daily))
		copy(sorted, daily)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

		total := 0
		for _, d := range sorted {
			total += d.Count
		}
		stats.LifetimeContributions = total
		stats.LongestStreak, stats.CurrentStreak = computeStreaks(sorted, today)
	}

	stats.TotalContributions = totalContributions(stats)
	return stats
}

// foldEvent updates the time buckets and activity sets for one event.
// Push events weight by their embedded commit count (zero when absent);
// pull-request and issue events weight one; secondary events touch only
// the active-date set and hourly bucket.
func foldEvent(stats *schema.Stats, ev schema.Event) {
	t := ev.CreatedAt.UTC()
	dateKey := t.Format(dateKeyFormat)
	dayName := schema.DayNames[int(t.Weekday())]
	monthName := schema.MonthNames[int(t.Month())-1]
	hour := t.Hour()

	switch {
	case ev.Type == schema.PushEvent:
		foldPrimary(stats, ev, dateKey, dayName, monthName, hour, len(ev.Payload.Commits))
	case ev.Type == schema.PullRequestEvent || ev.Type == schema.IssuesEvent:
		foldPrimary(stats, ev, dateKey, dayName, monthName, hour, 1)
	case secondaryEvents[ev.Type]:
		stats.ActiveDates.Add(dateKey)
		stats.Hourly[hour]++
	}
}

func foldPrimary(stats *schema.Stats, ev schema.Event, dateKey, dayName, monthName string, hour, weight int) {
	stats.ActiveDates.Add(dateKey)
	stats.Monthly[monthName] += weight
	stats.Weekday[dayName] += weight
	stats.Hourly[hour] += weight

	if name := shortRepoName(ev.Repo.Name); name != "" {
		stats.ReposContributed.Add(name)
	}
}

// computeStreaks calculates the longest and current streaks over a
// date-ascending daily contribution sequence. The current streak counts
// trailing consecutive non-zero days ending at or before today.
func computeStreaks(sorted []schema.DailyContribution, today string) (longest, current int) {
	streak := 0
	for _, d := range sorted {
		if d.Count > 0 {
			streak++
			longest = max(longest, streak)
		} else {
			streak = 0
		}
	}

	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Date > today {
			continue
		}
		if sorted[i].Count == 0 {
			break
		}
		current++
	}
	return longest, current
}

// totalContributions prefers the calendar-derived lifetime total, which
// spans the full history; otherwise it sums only the non-nil lifetime
// counters, and stays nil when all three are unknown.
func totalContributions(stats *schema.Stats) *int {
	if stats.LifetimeContributions > 0 {
		total := stats.LifetimeContributions
		return &total
	}

	if stats.Commits == nil && stats.PRs == nil && stats.Issues == nil {
		return nil
	}
	total := orZero(stats.Commits) + orZero(stats.PRs) + orZero(stats.Issues)
	return &total
}

// shortRepoName strips the owner prefix from an "owner/repo" name.
func shortRepoName(fullName string) string {
	if idx := strings.LastIndex(fullName, "/"); idx >= 0 {
		return fullName[idx+1:]
	}
	return fullName
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func orZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
