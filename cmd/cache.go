package cmd

import (
	"fmt"

	"github.com/isfarbaset/git-wrapped/internal/contract"
	"github.com/isfarbaset/git-wrapped/internal/iocache"
	"github.com/isfarbaset/git-wrapped/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheStatusSetupWrapper additionally initializes the cache stores, which
// status needs but clear and migrate must avoid (clear removes the SQLite
// file and migrate manages the schema itself).
func cacheStatusSetupWrapper(_ *cobra.Command, _ []string) error {
	if err := cacheSetup(); err != nil {
		return err
	}
	if err := iocache.InitCaching(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	return nil
}

// cacheCmd focused on cache management.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the card cache (improves performance)",
	Long: `Manage the card cache that avoids repeated API calls.

Git Wrapped caches each account's aggregated card for an hour, so repeat
runs render instantly and spend none of the rate budget.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached data
  migrate - Manage the cache database schema

Examples:
  # Check cache status
  gitwrapped cache status

  # Clear the cache to force fresh aggregation
  gitwrapped cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached card data",
	Long: `Delete all cached card data from the configured backend.

Use this when:
- A cached card looks stale and you cannot wait out the TTL
- The cache may be corrupted
- Testing behavior without the cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache tables

Examples:
  # Clear SQLite cache (default)
  gitwrapped cache clear

  # Clear MySQL cache (set connection string via env variable)
  GITWRAPPED_CACHE_BACKEND=mysql GITWRAPPED_CACHE_DB_CONNECT="..." gitwrapped cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the card cache.

Displays:
- Backend type and connection status
- Total number of cached cards
- Last and oldest cache entry timestamps
- Cache database size

Examples:
  # Check cache status
  gitwrapped cache status`,
	PreRunE: cacheStatusSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetCardStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}

// cacheMigrateCmd manages the cache database schema.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run cache database schema migrations",
	Long: `Apply or roll back the cache database schema migrations.

By default this migrates to the latest schema version. Use the
--target-version flag to pin a specific version, or 0 to roll back
every migration.

Examples:
  # Migrate to the latest schema
  gitwrapped cache migrate

  # Roll everything back
  gitwrapped cache migrate --target-version 0`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateCache(cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate cache", err)
		}
	},
}
