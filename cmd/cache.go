package cmd

import (
	"fmt"

	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/internal/histcache"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheCmd groups history cache administration.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the revision history cache.",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// cacheStatusCmd summarizes cache contents.
var cacheStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show history cache backend and contents.",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := histcache.GetStore().GetStatus()
		if err != nil {
			contract.LogFatal("Cannot read cache status", err)
		}
		fmt.Printf("Backend: %s\n", status.Backend)
		fmt.Printf("Archivers: %d\n", status.Archivers)
		fmt.Printf("Revisions: %d\n", status.Revisions)
		fmt.Printf("Metric values: %d\n", status.Values)
		if status.Newest.IsZero() {
			fmt.Println("Newest entry: none")
		} else {
			fmt.Printf("Newest entry: %s\n", status.Newest.Format("2006-01-02 15:04:05"))
		}
	},
}

// cacheExportCmd dumps the cache to Parquet files.
var cacheExportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export the history cache to Parquet files.",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		outputFile := viper.GetString("output-file")
		if err := histcache.ExecuteCacheExport(histcache.GetStore(), outputFile); err != nil {
			contract.LogFatal("Cannot export cache", err)
		}
	},
}

// cacheMigrateCmd runs cache schema migrations. It opens its own database
// connection, so the shared store stays out of the way.
var cacheMigrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Run history cache schema migrations.",
	PreRunE: configSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := histcache.MigrateCache(cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Cannot migrate cache", err)
		}
	},
}
