package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/wily/schema"
)

// CacheDBFileName is the default SQLite cache file, stored in $HOME.
const CacheDBFileName = ".wily_cache.db"

// Config holds validated runtime configuration for report execution.
type Config struct {
	Path           string                 // file or module path the metrics were collected for
	Metrics        []string               // resolved from the comma-separated --metrics value
	Revisions      int                    // revisions shown per archiver
	IncludeMessage bool                   // add the Message column
	Format         schema.ReportFormat    // console or html
	OutputPath     string                 // html output target, empty for the default
	UseColors      bool                   // colorize console deltas
	Width          int                    // terminal width override, 0 for auto
	Debug          bool                   // verbose logging
	CacheBackend   schema.DatabaseBackend // history cache backend
	CacheDBConnect string                 // backend connection string
}

// ConfigRawInput holds raw values collected from flags, env and config file
// before validation.
type ConfigRawInput struct {
	PathArg        string // positional argument, not viper-managed
	Metrics        string `mapstructure:"metrics"`
	Number         int    `mapstructure:"number"`
	Message        bool   `mapstructure:"message"`
	Format         string `mapstructure:"format"`
	Output         string `mapstructure:"output"`
	Color          string `mapstructure:"color"`
	Width          int    `mapstructure:"width"`
	Debug          bool   `mapstructure:"debug"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
}

// Clone returns a copy of the config safe for per-request mutation.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Metrics = append([]string(nil), c.Metrics...)
	return &clone
}

// ProcessAndValidate turns raw input into a validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.Path = input.PathArg
	if cfg.Path == "" {
		cfg.Path = "."
	}

	cfg.Metrics = splitMetrics(input.Metrics)
	if len(cfg.Metrics) == 0 {
		cfg.Metrics = append([]string(nil), schema.DefaultMetrics...)
	}
	for _, metric := range cfg.Metrics {
		if !strings.Contains(metric, ".") {
			return fmt.Errorf("invalid metric %q: expected operator.key form", metric)
		}
	}

	cfg.Revisions = input.Number
	if cfg.Revisions == 0 {
		cfg.Revisions = schema.DefaultRevisionCount
	}
	if cfg.Revisions < 1 || cfg.Revisions > schema.MaxRevisionCount {
		return fmt.Errorf("invalid revision count %d: must be between 1 and %d", cfg.Revisions, schema.MaxRevisionCount)
	}

	cfg.Format = schema.ReportFormat(input.Format)
	if cfg.Format == "" {
		cfg.Format = schema.ConsoleFormat
	}
	if !schema.ValidReportFormats[cfg.Format] {
		return fmt.Errorf("invalid format %q: choose console or html", input.Format)
	}

	cfg.IncludeMessage = input.Message
	cfg.OutputPath = input.Output
	cfg.UseColors = ParseBoolString(input.Color, true)
	cfg.Debug = input.Debug

	if input.Width < 0 {
		return fmt.Errorf("invalid width %d: must not be negative", input.Width)
	}
	cfg.Width = input.Width

	return processCacheConfig(cfg, input)
}

func processCacheConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(input.CacheBackend)
	if cfg.CacheBackend == "" {
		cfg.CacheBackend = schema.SQLiteBackend
	}
	if !schema.ValidDatabaseBackends[cfg.CacheBackend] {
		return fmt.Errorf("invalid cache backend %q: choose sqlite, mysql, postgresql or none", input.CacheBackend)
	}

	cfg.CacheDBConnect = input.CacheDBConnect
	switch cfg.CacheBackend {
	case schema.SQLiteBackend:
		if cfg.CacheDBConnect == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("cannot locate home directory for the cache file: %w", err)
			}
			cfg.CacheDBConnect = filepath.Join(home, CacheDBFileName)
		}
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if cfg.CacheDBConnect == "" {
			return fmt.Errorf("cache backend %s requires a connection string", cfg.CacheBackend)
		}
	}
	return nil
}

func splitMetrics(raw string) []string {
	var metrics []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			metrics = append(metrics, part)
		}
	}
	return metrics
}
