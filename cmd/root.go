package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/internal/histcache"
	"github.com/huangsam/wily/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg holds the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "wily",
	Short:              "Report on source-quality metrics across revision history.",
	Long:               `Wily renders historical comparison tables of source-quality metrics from a pre-built revision cache, so you can watch complexity trends over time.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".wily")  // Name of config file (without extension)
		viper.SetConfigType("yaml")   // We'll use YAML format
		viper.AddConfigPath(".")      // Look in the current directory
		viper.AddConfigPath("$HOME")  // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("WILY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Set defaults in Viper
	viper.SetDefault("metrics", strings.Join(schema.DefaultMetrics, ","))
	viper.SetDefault("number", schema.DefaultRevisionCount)
	viper.SetDefault("message", false)
	viper.SetDefault("format", schema.ConsoleFormat)
	viper.SetDefault("output", "")
	viper.SetDefault("color", "yes")
	viper.SetDefault("width", 0)
	viper.SetDefault("debug", false)
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
}

// configSetup merges defaults, file, env and flags into the validated
// config, without touching the cache store.
func configSetup(_ *cobra.Command, args []string) error {
	// 1. Read config file. Not finding one is fine; defaults/env/flags apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// 2. Unmarshal all resolved values from Viper into the raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.PathArg = args[0]
	}

	// 4. Run all validation, populating the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetup runs configSetup and opens the history cache store.
func sharedSetup(_ context.Context, cmd *cobra.Command, args []string) error {
	if err := configSetup(cmd, args); err != nil {
		return err
	}
	if err := histcache.InitStore(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return fmt.Errorf("failed to open history cache: %w", err)
	}
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
