package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/isfarbaset/git-wrapped/schema"
)

// Default values for configuration.
const (
	// PageSize is the fixed page size for paginated list endpoints.
	PageSize = 100

	// EventPageCap and EventPageCapToken bound the event feed page depth
	// without and with an elevated-access credential.
	EventPageCap      = 1
	EventPageCapToken = 10

	// StatsRepoCap and StatsRepoCapToken bound how many repositories get a
	// contributor-statistics call per run.
	StatsRepoCap      = 5
	StatsRepoCapToken = 50

	// StatsBatchSize is the concurrent batch width for contributor-statistics calls.
	StatsBatchSize = 5

	// StatsPollRetries and StatsPollDelay bound the "still computing" poll loop.
	StatsPollRetries = 2
	StatsPollDelay   = 1500 * time.Millisecond

	// BudgetThreshold is the remaining-call floor below which an
	// uncredentialed run falls back to the degraded minimal plan.
	BudgetThreshold = 3

	// CacheTTL is how long a cached card stays fresh.
	CacheTTL = time.Hour
)

// usernamePattern matches valid account identifiers: alphanumeric with
// single interior hyphens. Length is checked separately.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9](?:-?[a-zA-Z0-9])*$`)

// Config holds the final, validated runtime configuration.
type Config struct {
	Username       string
	Token          string
	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string
	Output         schema.OutputFormat
	OutputFile     string
	ParquetFile    string
	NoCache        bool
	Width          int
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Token          string `mapstructure:"token"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	ParquetFile    string `mapstructure:"parquet-file"`
	NoCache        bool   `mapstructure:"no-cache"`
	Width          int    `mapstructure:"width"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Output Validation ---
	output := schema.OutputFormat(strings.ToLower(input.Output))
	switch output {
	case schema.TextOut, schema.JSONOut:
		cfg.Output = output
	default:
		return fmt.Errorf("invalid output format '%s'. must be text or json", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.ParquetFile = input.ParquetFile

	// --- 2. Cache Backend Validation ---
	backend := schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	switch backend {
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend, schema.NoneBackend:
		cfg.CacheBackend = backend
	default:
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, or none", input.CacheBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.CacheDBConnect); err != nil {
		return err
	}
	cfg.CacheDBConnect = input.CacheDBConnect

	// --- 3. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	cfg.Token = strings.TrimSpace(input.Token)
	cfg.NoCache = input.NoCache
	return nil
}

// ValidateUsername checks that the account identifier is well formed before
// any network call is spent on it.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) > 39 || !usernamePattern.MatchString(username) {
		return fmt.Errorf("invalid username %q", username)
	}
	return nil
}

// ValidateDatabaseConnectionString checks that database backends have a
// connection string when they require one.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if strings.TrimSpace(connStr) == "" {
			return fmt.Errorf("cache backend %s requires a connection string", backend)
		}
	}
	return nil
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitwrapped_cache.db"
	}
	return filepath.Join(homeDir, ".gitwrapped_cache.db")
}
