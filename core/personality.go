package core

import (
	"math"
	"sort"

	"github.com/isfarbaset/git-wrapped/schema"
)

// Personality picks the developer persona from the first matching rule in
// a fixed priority order. Nil counters are treated as zero, so a degraded
// run can only fall through to the later rules. The language count comes
// from the repo list rather than stats, so the caller supplies it.
func Personality(stats *schema.Stats, langCount int) schema.Persona {
	return personalityFor(
		orZero(stats.Commits),
		orZero(stats.PRs),
		orZero(stats.Issues),
		stats.LongestStreak,
		langCount,
		orZero(stats.Stars),
		orZero(stats.TotalContributions),
	)
}

func personalityFor(commits, prs, issues, longestStreak, langCount, stars, contribs int) schema.Persona {
	switch {
	case commits > 500:
		return schema.Persona{Emoji: "🚀", Title: "CODE MACHINE", Sub: "Ships code like there's no tomorrow"}
	case prs > 50:
		return schema.Persona{Emoji: "🤝", Title: "COLLABORATION KING", Sub: "Pull requests are your love language"}
	case issues > 30:
		return schema.Persona{Emoji: "🐛", Title: "BUG HUNTER", Sub: "No bug escapes your watchful eye"}
	case longestStreak > 30:
		return schema.Persona{Emoji: "🔥", Title: "STREAK MASTER", Sub: "Consistency is your superpower"}
	case langCount > 5:
		return schema.Persona{Emoji: "🎨", Title: "POLYGLOT DEV", Sub: "Fluent in many languages"}
	case stars > 100:
		return schema.Persona{Emoji: "⭐", Title: "STAR COLLECTOR", Sub: "The community loves your work"}
	case contribs > 200:
		return schema.Persona{Emoji: "💪", Title: "DEDICATED DEV", Sub: "Showing up and shipping"}
	default:
		return schema.Persona{Emoji: "🌱", Title: "GROWING DEV", Sub: "Every commit counts"}
	}
}

// peakBuckets in evaluation order; ties go to the earliest bucket.
var peakBuckets = []struct {
	name    string
	persona schema.Persona
}{
	{"Night", schema.Persona{Emoji: "🦉", Title: "NIGHT OWL", Sub: "Night"}},
	{"Morning", schema.Persona{Emoji: "🌅", Title: "EARLY BIRD", Sub: "Morning"}},
	{"Afternoon", schema.Persona{Emoji: "☀️", Title: "AFTERNOON WARRIOR", Sub: "Afternoon"}},
	{"Evening", schema.Persona{Emoji: "🌆", Title: "EVENING CODER", Sub: "Evening"}},
}

// PeakTime buckets hourly activity into night (0-5), morning (6-11),
// afternoon (12-17) and evening (18-23), and returns the persona for the
// busiest bucket. Ties go to the earliest bucket, so an empty hourly map
// yields the night persona.
func PeakTime(hourly map[int]int) schema.Persona {
	if len(hourly) == 0 {
		return peakBuckets[0].persona
	}

	totals := make([]int, len(peakBuckets))
	for hour, count := range hourly {
		switch {
		case hour < 6:
			totals[0] += count
		case hour < 12:
			totals[1] += count
		case hour < 18:
			totals[2] += count
		default:
			totals[3] += count
		}
	}

	best := 0
	for i, t := range totals {
		if t > totals[best] {
			best = i
		}
	}
	return peakBuckets[best].persona
}

// languageCap limits the language bar to its most-used entries.
const languageCap = 8

// ComputeLanguages weights each owned repository's primary language by its
// size and returns the top entries as percentage segments. Forks and
// repositories without a detected language are skipped.
func ComputeLanguages(repos []schema.Repo) []schema.LanguageStat {
	weights := map[string]int{}
	total := 0
	for _, r := range repos {
		if r.Fork || r.Language == "" {
			continue
		}
		w := max(r.Size, 1)
		weights[r.Language] += w
		total += w
	}
	if total == 0 {
		return nil
	}

	langs := make([]schema.LanguageStat, 0, len(weights))
	for name, w := range weights {
		pct := math.Round(float64(w)/float64(total)*1000) / 10
		color, ok := schema.LangColors[name]
		if !ok {
			color = schema.DefaultLangColor
		}
		langs = append(langs, schema.LanguageStat{Name: name, Pct: pct, Color: color})
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Pct != langs[j].Pct {
			return langs[i].Pct > langs[j].Pct
		}
		return langs[i].Name < langs[j].Name
	})
	if len(langs) > languageCap {
		langs = langs[:languageCap]
	}
	return langs
}
