package outwriter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/isfarbaset/git-wrapped/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// topRepoLimit bounds the "top repositories" section on the card.
const topRepoLimit = 5

// langBarWidth is the character width of the language bar.
const langBarWidth = 30

// writeCardJSON handles opening the file and calling the JSON writer.
func writeCardJSON(result *schema.CardResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// writeCardText renders the human-readable card. Provenance notices go to
// stderr so piped stdout stays clean.
func writeCardText(result *schema.CardResult, cfg *contract.Config) error {
	if result.FromCache {
		contract.Notice("Serving cached results")
	}
	if result.Degraded {
		contract.LogWarn("Rate budget exhausted, showing a minimal card", nil)
	}
	if result.Stats.Partial {
		contract.LogWarn("Some sources were unavailable, stats are partial", nil)
	}

	width := getCardWidth(cfg)
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return renderCardText(w, result, width)
	}, "Wrote card")
}

// renderCardText writes the card sections to w at the given width.
func renderCardText(w io.Writer, result *schema.CardResult, width int) error {
	renderHeader(w, result, width)
	renderPersonas(w, result)
	renderStatsTable(w, result.Stats)
	renderActivityRows(w, result.Stats)
	renderLanguages(w, result.Languages)
	renderTopRepos(w, result.Stats)
	renderFunFacts(w, result)
	return nil
}

func renderHeader(w io.Writer, result *schema.CardResult, width int) {
	rule := strings.Repeat("═", width)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s (@%s) — Git Wrapped\n", result.Profile.DisplayName(), result.Profile.Login)
	if result.Profile.Bio != "" {
		fmt.Fprintf(w, "  %s\n", result.Profile.Bio)
	}
	var details []string
	if result.Profile.Company != "" {
		details = append(details, result.Profile.Company)
	}
	if result.Profile.Location != "" {
		details = append(details, result.Profile.Location)
	}
	if !result.Profile.CreatedAt.IsZero() {
		details = append(details, "Joined "+result.Profile.CreatedAt.Format("Jan 2006"))
	}
	if len(details) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(details, " · "))
	}
	fmt.Fprintf(w, "  %s followers · %s following · %s public repos\n",
		schema.FormatCount(result.Profile.Followers),
		schema.FormatCount(result.Profile.Following),
		schema.FormatCount(result.Profile.PublicRepos))
	fmt.Fprintln(w, rule)
}

func renderPersonas(w io.Writer, result *schema.CardResult) {
	fmt.Fprintf(w, "\n%s  %s — %s\n", result.Personality.Emoji, result.Personality.Title, result.Personality.Sub)
	fmt.Fprintf(w, "%s  %s (peak: %s)\n\n", result.PeakTime.Emoji, result.PeakTime.Title, result.PeakTime.Sub)
}

func renderStatsTable(w io.Writer, stats *schema.Stats) {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Stat", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Commits", schema.FormatNullable(stats.Commits)},
		{"Pull requests", schema.FormatNullable(stats.PRs)},
		{"PRs merged", schema.FormatNullable(stats.PRsMerged)},
		{"Issues", schema.FormatNullable(stats.Issues)},
		{"Issues closed", schema.FormatNullable(stats.IssuesClosed)},
		{"Stars received", schema.FormatNullable(stats.Stars)},
		{"Forks received", schema.FormatNullable(stats.Forks)},
		{"Longest streak", schema.Pluralize(stats.LongestStreak, "day")},
		{"Current streak", schema.Pluralize(stats.CurrentStreak, "day")},
		{"Active days", schema.FormatCount(len(stats.ActiveDates))},
		{"Total contributions", schema.FormatNullable(stats.TotalContributions)},
	}
	_ = table.Bulk(data)
	_ = table.Render()
}

// sparkRunes are the intensity levels for the activity rows.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// renderActivityRows draws the monthly and weekday contribution sparklines.
// Both rows come from the event feed, so a failed feed skips them entirely.
func renderActivityRows(w io.Writer, stats *schema.Stats) {
	monthly := sparkline(stats.Monthly, schema.MonthNames)
	weekday := sparkline(stats.Weekday, schema.WeekOrder)
	if monthly == "" && weekday == "" {
		return
	}

	fmt.Fprintln(w)
	if monthly != "" {
		fmt.Fprintf(w, "Monthly:  %s  (%s to %s)\n", monthly, schema.MonthNames[0], schema.MonthNames[len(schema.MonthNames)-1])
	}
	if weekday != "" {
		fmt.Fprintf(w, "Weekdays: %s  (%s to %s)\n", weekday, schema.WeekOrder[0], schema.WeekOrder[len(schema.WeekOrder)-1])
	}
}

// sparkline renders one intensity rune per bucket, in bucket order.
// Returns "" when every bucket is zero or missing.
func sparkline(counts map[string]int, order []string) string {
	max := 0
	for _, name := range order {
		if counts[name] > max {
			max = counts[name]
		}
	}
	if max == 0 {
		return ""
	}

	var b strings.Builder
	for _, name := range order {
		level := counts[name] * (len(sparkRunes) - 1) / max
		b.WriteRune(sparkRunes[level])
	}
	return b.String()
}

func renderLanguages(w io.Writer, langs []schema.LanguageStat) {
	if len(langs) == 0 {
		return
	}

	fmt.Fprintln(w, "\nLanguages:")
	var bar strings.Builder
	for _, l := range langs {
		segment := int(l.Pct / 100 * langBarWidth)
		if segment < 1 {
			segment = 1
		}
		bar.WriteString(strings.Repeat("█", segment))
		bar.WriteString(" ")
	}
	fmt.Fprintf(w, "  %s\n", strings.TrimSpace(bar.String()))
	for _, l := range langs {
		fmt.Fprintf(w, "  %-20s %5.1f%%\n", l.Name, l.Pct)
	}
}

func renderTopRepos(w io.Writer, stats *schema.Stats) {
	top := schema.TopRepoCommits(stats.RepoCommits, topRepoLimit)
	if len(top) == 0 {
		return
	}

	fmt.Fprintln(w, "\nTop repositories by your commits:")
	for i, repo := range top {
		fmt.Fprintf(w, "  %d. %-30s %s\n", i+1, repo.Name, schema.Pluralize(repo.Commits, "commit"))
	}
}

// renderFunFacts prints the closing one-liners derived from the stats.
func renderFunFacts(w io.Writer, result *schema.CardResult) {
	var facts []string

	if !result.Profile.CreatedAt.IsZero() {
		years := time.Since(result.Profile.CreatedAt).Hours() / 24 / 365.25
		if years >= 1 {
			facts = append(facts, fmt.Sprintf("On GitHub for %.1f years", years))
		}
	}
	if result.Stats.LifetimeContributions > 0 {
		facts = append(facts, schema.FormatCount(result.Stats.LifetimeContributions)+" contributions in the last year")
	}
	if name := peakBucketName(result.Stats.Monthly, schema.MonthNames); name != "" {
		facts = append(facts, "Busiest month: "+name)
	}
	if name := peakBucketName(result.Stats.Weekday, schema.WeekOrder); name != "" {
		facts = append(facts, "Busiest day: "+name)
	}
	if n := len(result.Languages); n > 1 {
		facts = append(facts, schema.Pluralize(n, "language")+" in play")
	}

	if len(facts) == 0 {
		return
	}
	fmt.Fprintln(w, "\nFun facts:")
	for _, fact := range facts {
		fmt.Fprintf(w, "  · %s\n", fact)
	}
}

// peakBucketName returns the name of the highest-count bucket, ties going
// to the earlier bucket. Empty when there is no activity at all.
func peakBucketName(counts map[string]int, order []string) string {
	best, bestCount := "", 0
	for _, name := range order {
		if counts[name] > bestCount {
			best, bestCount = name, counts[name]
		}
	}
	return best
}
