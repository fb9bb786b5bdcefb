package cmd

import (
	"time"

	"github.com/isfarbaset/git-wrapped/core"
	"github.com/isfarbaset/git-wrapped/internal/calendar"
	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/isfarbaset/git-wrapped/internal/ghclient"
	"github.com/isfarbaset/git-wrapped/internal/outwriter"
	"github.com/isfarbaset/git-wrapped/internal/parquet"
	"github.com/isfarbaset/git-wrapped/schema"
	"github.com/spf13/cobra"
)

// cardCmd builds and renders the stats card for one account.
var cardCmd = &cobra.Command{
	Use:   "card <username>",
	Short: "Build the contribution stats card for an account.",
	Long: `Aggregate public GitHub activity into a year-in-review stats card.

The card combines several sources:
- Profile, repository list, and recent public events
- Lifetime totals from the search API and per-repo contributor statistics
- The daily contribution calendar for streaks and lifetime totals

Sources degrade independently: a failing source shows up as an em dash
on the card instead of a fake zero, and the whole run only fails when
the account itself cannot be fetched.

Results are cached for an hour. A run without a token falls back to a
minimal calendar-only card when the rate budget is nearly exhausted.

Examples:
  # Build a card for a user
  gitwrapped card octocat

  # With a token for deeper history and a larger budget
  gitwrapped card octocat --token ghp_xxx

  # JSON output for scripting
  gitwrapped card octocat -o json

  # Export the underlying data to Parquet files
  gitwrapped card octocat --parquet-file ./octocat`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		src := ghclient.New(cfg.Token)
		cal := calendar.New()

		result, err := core.BuildCard(rootCtx, src, cal, cacheManager, core.CardOptions{
			Username: cfg.Username,
			NoCache:  cfg.NoCache,
		})
		if err != nil {
			contract.LogFatal("Cannot build card", err)
		}

		if err := outwriter.NewOutWriter().WriteCard(result, cfg); err != nil {
			contract.LogFatal("Cannot write card", err)
		}

		if cfg.ParquetFile != "" {
			if err := exportParquet(result); err != nil {
				contract.LogFatal("Cannot export parquet data", err)
			}
		}
	},
}

// exportParquet writes the card's underlying data next to the configured
// path prefix, one file per data set.
func exportParquet(result *schema.CardResult) error {
	exportTime := time.Now().UTC()

	daily := parquet.BuildDailyActivity(result.Profile.Login, result.Daily, exportTime)
	if len(daily) > 0 {
		if err := parquet.WriteDailyActivityParquet(daily, cfg.ParquetFile+"_daily.parquet"); err != nil {
			return err
		}
		contract.Notice("Exported " + cfg.ParquetFile + "_daily.parquet")
	}

	repos := parquet.BuildRepoActivity(result, exportTime)
	if len(repos) > 0 {
		if err := parquet.WriteRepoActivityParquet(repos, cfg.ParquetFile+"_repos.parquet"); err != nil {
			return err
		}
		contract.Notice("Exported " + cfg.ParquetFile + "_repos.parquet")
	}

	return nil
}
