// Package cmd defines the command-line interface for git-wrapped.
package cmd

import (
	"os"

	"github.com/isfarbaset/git-wrapped/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Add the token subcommands to the parent token command
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenShowCmd)
	tokenCmd.AddCommand(tokenClearCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("token", "t", "", "GitHub access token for a larger rate budget")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("parquet-file", "", "Optional path prefix to export Parquet data to")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Bypass the card cache for this run")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (defaults to .gitwrapped.yaml in . or $HOME)")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		// Flag binding failures are programming errors, fail loudly.
		cobra.CheckErr(err)
	}

	// Bind the migrate command's local flags
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 = latest, 0 = rollback all)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		cobra.CheckErr(err)
	}

	rootCmd.SetOut(os.Stdout)
}
