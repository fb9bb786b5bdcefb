// Package schema has models, enums and shared helpers for all parts of git-wrapped.
package schema

import "time"

// Profile is the account profile snapshot from the user endpoint.
// It is fetched once per aggregation run and never mutated afterwards.
type Profile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayName returns the profile name, falling back to the login.
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

// Repo is a single repository summary from the paginated repo list endpoint.
type Repo struct {
	Name       string    `json:"name"`
	FullName   string    `json:"full_name"`
	Fork       bool      `json:"fork"`
	Language   string    `json:"language"`
	Size       int       `json:"size"`
	Stargazers int       `json:"stargazers_count"`
	Forks      int       `json:"forks_count"`
	PushedAt   time.Time `json:"pushed_at"`
}

// EventCommit is a commit reference embedded in a push event payload.
type EventCommit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// EventPayload carries the optional per-event payload fields we care about.
type EventPayload struct {
	Commits []EventCommit `json:"commits"`
}

// EventRepo identifies the repository an event originated from.
type EventRepo struct {
	Name string `json:"name"` // "owner/repo"
}

// Event is a single public activity event. Events are folded into
// aggregate buckets by the compute engine and not retained individually.
type Event struct {
	Type      string       `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	Repo      EventRepo    `json:"repo"`
	Payload   EventPayload `json:"payload"`
}

// DailyContribution is one day of the third-party contribution calendar.
// Dates use the YYYY-MM-DD form, so lexicographic order is chronological order.
type DailyContribution struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// ContributorStat is one contributor's lifetime commit total for a single
// repository, from the asynchronous contributor-statistics endpoint.
type ContributorStat struct {
	Total  int `json:"total"`
	Author struct {
		Login string `json:"login"`
	} `json:"author"`
}

// RateBudget is the remaining call allowance reported by the
// budget-inspection endpoint.
type RateBudget struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

// LifetimeStats holds the lifetime totals merged from the search-aggregate
// and contributor-statistics sources. A nil counter means the source was
// unavailable, which is distinct from a confirmed zero.
type LifetimeStats struct {
	Commits      *int           `json:"total_commits"`
	PRs          *int           `json:"total_prs"`
	PRsMerged    *int           `json:"total_prs_merged"`
	Issues       *int           `json:"total_issues"`
	IssuesClosed *int           `json:"total_issues_closed"`
	RepoCommits  map[string]int `json:"repo_commits"`
}

// EmptyLifetimeStats returns a LifetimeStats with every counter unavailable.
func EmptyLifetimeStats() LifetimeStats {
	return LifetimeStats{RepoCommits: map[string]int{}}
}

// Stats is the final statistics record produced by one aggregation run.
// It is constructed once and never mutated after construction. Nil pointer
// fields mean "source unavailable"; zero values mean a confirmed zero.
type Stats struct {
	// Lifetime totals from the search and contributor-statistics sources.
	Commits      *int           `json:"total_commits"`
	PRs          *int           `json:"total_prs"`
	PRsMerged    *int           `json:"total_prs_merged"`
	Issues       *int           `json:"total_issues"`
	IssuesClosed *int           `json:"total_issues_closed"`
	RepoCommits  map[string]int `json:"repo_commits"`

	// Time-bucketed contribution mappings derived from the event feed.
	Monthly map[string]int `json:"monthly_contributions"`
	Weekday map[string]int `json:"weekday_contributions"`
	Hourly  map[int]int    `json:"hourly_contributions"`

	// Distinct activity sets derived from the event feed.
	ActiveDates      StringSet `json:"active_dates"`
	ReposContributed StringSet `json:"repos_contributed"`

	// Streaks from the daily contribution calendar, in days.
	LongestStreak int `json:"longest_streak"`
	CurrentStreak int `json:"current_streak"`

	// From the repository list. Nil when the repo source failed outright.
	Stars *int `json:"stars_received"`
	Forks *int `json:"forks_received"`

	// From the profile.
	PublicRepos int `json:"public_repos"`
	Followers   int `json:"followers"`
	Following   int `json:"following"`

	// LifetimeContributions is the calendar-derived total, 0 when the
	// calendar was unavailable. TotalContributions prefers the calendar
	// and falls back to summing the non-nil lifetime counters.
	LifetimeContributions int  `json:"lifetime_contributions"`
	TotalContributions    *int `json:"total_contributions"`

	// Degradation flags. Partial is always ReposFailed || EventsFailed.
	ReposFailed  bool `json:"repos_failed"`
	EventsFailed bool `json:"events_failed"`
	Partial      bool `json:"partial"`
}

// CachedCard is the cache entry value for one account: everything needed
// to re-render a card without touching the network.
type CachedCard struct {
	Profile *Profile            `json:"profile"`
	Repos   []Repo              `json:"repos"`
	Stats   *Stats              `json:"stats"`
	Daily   []DailyContribution `json:"daily"`
}

// CardResult is the output of a full card build, including the rule-derived
// personas and language breakdown used on the rendered card.
type CardResult struct {
	Profile   *Profile            `json:"profile"`
	Repos     []Repo              `json:"repos"`
	Stats     *Stats              `json:"stats"`
	Daily     []DailyContribution `json:"daily"`
	FromCache bool                `json:"from_cache"`
	Degraded  bool                `json:"degraded"`

	Personality Persona        `json:"personality"`
	PeakTime    Persona        `json:"peak_time"`
	Languages   []LanguageStat `json:"languages"`
}

// Persona is a rule-derived label shown on the card, used for both the
// developer personality and the peak coding time.
type Persona struct {
	Emoji string `json:"emoji"`
	Title string `json:"title"`
	Sub   string `json:"sub"`
}

// LanguageStat is one language segment of the card's language bar.
type LanguageStat struct {
	Name  string  `json:"name"`
	Pct   float64 `json:"pct"`
	Color string  `json:"color"`
}

// RepoCommitCount pairs a repository name with the commit count attributed
// to the account, for ranked "top repo" views.
type RepoCommitCount struct {
	Name    string `json:"name"`
	Commits int    `json:"commits"`
}

// CacheStatus holds status information about a cache store.
type CacheStatus struct {
	Backend         string
	Connected       bool
	TotalEntries    int
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}
