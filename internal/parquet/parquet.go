// Package parquet provides data structures and functions for exporting
// aggregated card data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/isfarbaset/git-wrapped/schema"
	"github.com/parquet-go/parquet-go"
)

// DailyActivity represents one day of the contribution calendar for an account.
type DailyActivity struct {
	// Login is the account the calendar belongs to
	Login string `parquet:"login,snappy"`

	// Date is the calendar day in YYYY-MM-DD form
	Date string `parquet:"date,snappy"`

	// Count is the number of contributions on that day
	Count int32 `parquet:"count,snappy"`

	// Level is the calendar intensity bucket (0-4)
	Level int32 `parquet:"level,snappy"`

	// ExportTime is when this row was exported (stored as TIMESTAMP with nanosecond precision)
	ExportTime time.Time `parquet:"export_time,snappy"`
}

// RepoActivity represents the commit attribution for one repository.
type RepoActivity struct {
	// Login is the account the attribution belongs to
	Login string `parquet:"login,snappy"`

	// RepoName is the repository short name
	RepoName string `parquet:"repo_name,snappy"`

	// Commits is the lifetime commit count attributed to the account
	Commits int32 `parquet:"commits,snappy"`

	// Stars is the repository star count (nullable, unknown for cached rows)
	Stars *int32 `parquet:"stars,optional,snappy"`

	// Language is the repository primary language (nullable)
	Language *string `parquet:"language,optional,snappy"`

	// ExportTime is when this row was exported
	ExportTime time.Time `parquet:"export_time,snappy"`
}

// BuildDailyActivity converts a card result's contribution calendar into
// export rows. Degraded or calendar-less results produce no rows.
func BuildDailyActivity(login string, daily []schema.DailyContribution, exportTime time.Time) []DailyActivity {
	rows := make([]DailyActivity, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, DailyActivity{
			Login:      login,
			Date:       d.Date,
			Count:      int32(d.Count),
			Level:      int32(d.Level),
			ExportTime: exportTime,
		})
	}
	return rows
}

// BuildRepoActivity converts a card result's repo commit attribution into
// export rows, enriched with star and language data when the repo list is
// available.
func BuildRepoActivity(result *schema.CardResult, exportTime time.Time) []RepoActivity {
	byName := make(map[string]schema.Repo, len(result.Repos))
	for _, r := range result.Repos {
		byName[r.Name] = r
	}

	ranked := schema.TopRepoCommits(result.Stats.RepoCommits, 0)
	rows := make([]RepoActivity, 0, len(ranked))
	for _, rc := range ranked {
		row := RepoActivity{
			Login:      result.Profile.Login,
			RepoName:   rc.Name,
			Commits:    int32(rc.Commits),
			ExportTime: exportTime,
		}
		if repo, ok := byName[rc.Name]; ok {
			stars := int32(repo.Stargazers)
			row.Stars = &stars
			if repo.Language != "" {
				lang := repo.Language
				row.Language = &lang
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteRepoActivityParquet writes a slice of RepoActivity structs to a Parquet file.
func WriteRepoActivityParquet(data []RepoActivity, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RepoActivity struct tags
	writer := parquet.NewGenericWriter[RepoActivity](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteDailyActivityParquet writes a slice of DailyActivity structs to a Parquet file.
func WriteDailyActivityParquet(data []DailyActivity, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the DailyActivity struct tags
	writer := parquet.NewGenericWriter[DailyActivity](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
