// Package cmd defines the command-line interface for wily.
package cmd

import (
	"strings"

	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheExportCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "History cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname?parseTime=true)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored deltas in console output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Bool("debug", false, "Print debug logging to stderr")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().StringP("metrics", "m", strings.Join(schema.DefaultMetrics, ","), "Comma-separated metrics in operator.key form")
	reportCmd.Flags().IntP("number", "n", schema.DefaultRevisionCount, "Number of revisions to show per archiver")
	reportCmd.Flags().Bool("message", false, "Include the revision message column")
	reportCmd.Flags().String("format", string(schema.ConsoleFormat), "Report format: console or html")
	reportCmd.Flags().StringP("output", "o", "", "Output path for html format (directory or *.html file)")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}

	// Bind all flags of cacheExportCmd to Viper
	cacheExportCmd.Flags().String("output-file", "", "Path prefix for the exported Parquet files")
	if err := viper.BindPFlags(cacheExportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache export flags", err)
	}

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}
