package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gwschema "github.com/isfarbaset/git-wrapped/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyActivityStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(DailyActivity))
	require.NotNil(t, schema)

	expectedColumns := []string{"login", "date", "count", "level", "export_time"}
	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestRepoActivityStructTags(t *testing.T) {
	schema := parquet.SchemaOf(new(RepoActivity))
	require.NotNil(t, schema)

	expectedColumns := []string{"login", "repo_name", "commits", "stars", "language", "export_time"}
	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestBuildDailyActivity(t *testing.T) {
	now := time.Now()
	daily := []gwschema.DailyContribution{
		{Date: "2026-01-01", Count: 3, Level: 2},
		{Date: "2026-01-02", Count: 0, Level: 0},
	}

	rows := BuildDailyActivity("octo", daily, now)
	require.Len(t, rows, 2)
	assert.Equal(t, "octo", rows[0].Login)
	assert.Equal(t, "2026-01-01", rows[0].Date)
	assert.Equal(t, int32(3), rows[0].Count)
	assert.Equal(t, now, rows[0].ExportTime)

	assert.Empty(t, BuildDailyActivity("octo", nil, now), "No calendar means no rows")
}

func TestBuildRepoActivity(t *testing.T) {
	now := time.Now()
	result := &gwschema.CardResult{
		Profile: &gwschema.Profile{Login: "octo"},
		Repos: []gwschema.Repo{
			{Name: "widgets", Stargazers: 12, Language: "Go"},
			{Name: "gadgets"},
		},
		Stats: &gwschema.Stats{RepoCommits: map[string]int{"widgets": 40, "gadgets": 9, "orphan": 2}},
	}

	rows := BuildRepoActivity(result, now)
	require.Len(t, rows, 3)

	// Rows come out ranked by commit count
	assert.Equal(t, "widgets", rows[0].RepoName)
	assert.Equal(t, int32(40), rows[0].Commits)
	require.NotNil(t, rows[0].Stars)
	assert.Equal(t, int32(12), *rows[0].Stars)
	require.NotNil(t, rows[0].Language)
	assert.Equal(t, "Go", *rows[0].Language)

	// Repo with no detected language keeps a null language
	assert.Equal(t, "gadgets", rows[1].RepoName)
	assert.Nil(t, rows[1].Language)

	// Attribution with no matching repo entry keeps null enrichment
	assert.Equal(t, "orphan", rows[2].RepoName)
	assert.Nil(t, rows[2].Stars)
	assert.Nil(t, rows[2].Language)
}

func TestWriteDailyActivityParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "daily.parquet")
	rows := BuildDailyActivity("octo", []gwschema.DailyContribution{{Date: "2026-01-01", Count: 1, Level: 1}}, time.Now())

	require.NoError(t, WriteDailyActivityParquet(rows, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "Parquet file should not be empty")

	// Read the file back to verify it is a valid parquet file
	readRows, err := parquet.ReadFile[DailyActivity](outputPath)
	require.NoError(t, err)
	require.Len(t, readRows, 1)
	assert.Equal(t, "octo", readRows[0].Login)
}

func TestWriteRepoActivityParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "repos.parquet")
	stars := int32(5)
	rows := []RepoActivity{{Login: "octo", RepoName: "widgets", Commits: 3, Stars: &stars, ExportTime: time.Now()}}

	require.NoError(t, WriteRepoActivityParquet(rows, outputPath))

	readRows, err := parquet.ReadFile[RepoActivity](outputPath)
	require.NoError(t, err)
	require.Len(t, readRows, 1)
	assert.Equal(t, int32(3), readRows[0].Commits)
}
