package cmd

import (
	"os"

	"github.com/huangsam/wily/internal/assets"
	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/internal/histcache"
	"github.com/huangsam/wily/internal/render"
	"github.com/huangsam/wily/internal/report"
	"github.com/huangsam/wily/internal/state"
	"github.com/huangsam/wily/schema"
	"github.com/spf13/cobra"
)

// reportCmd shows the metric history for a path.
var reportCmd = &cobra.Command{
	Use:   "report [path]",
	Short: "Show historical metrics for a file or module path.",
	Long: `Build a revision-by-revision comparison of source-quality metrics for a
path, using the pre-built history cache. Each numeric metric cell shows the
value and its delta against the previous revision.

Examples:
  wily report src/app.py
  wily report src/app.py -m raw.loc,maintainability.mi -n 20 --message
  wily report src/app.py --format html -o build/report.html`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runReport(); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}

func runReport() error {
	logger := &contract.StderrLogger{Verbose: cfg.Debug}
	st := state.New(histcache.GetStore())

	// HTML output stays free of ANSI escapes regardless of --color.
	colorize := cfg.UseColors && cfg.Format == schema.ConsoleFormat
	table, err := report.Generate(cfg, st, logger, colorize)
	if err != nil {
		return err
	}

	if cfg.Format == schema.HTMLFormat {
		return render.WriteHTML(table, cfg.OutputPath, assets.Provider{}, logger)
	}
	return render.WriteConsole(os.Stdout, table)
}
